// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import (
	"regexp"
	"strings"

	"github.com/reconforth/reconforth/internal/types"
)

var (
	djotHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	djotLinkRe    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	djotAttrRe    = regexp.MustCompile(`\{[^}]*\}`)
)

// ParseDjot walks content line by line. Djot shares ATX headings and
// fenced code blocks with Markdown but attaches attributes in trailing
// {.class #id} blocks, which are stripped from recorded text, and footnote
// references ([^label]) which are treated as plain text rather than links.
func ParseDjot(content string) (types.DocumentStructure, error) {
	structure := types.NewDocumentStructure(types.FormatDjot)

	lines := strings.Split(content, "\n")
	var paragraph []string

	flushParagraph := func() {
		text := strings.TrimSpace(strings.Join(paragraph, " "))
		paragraph = nil
		if text == "" {
			return
		}
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementParagraph, Text: text})
		for _, m := range djotLinkRe.FindAllStringSubmatch(text, -1) {
			if strings.HasPrefix(m[1], "^") {
				continue // footnote reference, not a link
			}
			structure.Links = append(structure.Links, types.LinkRef{Text: m[1], URL: m[2]})
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementLink, LinkText: m[1], URL: m[2]})
		}
	}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(djotAttrRe.ReplaceAllString(lines[i], ""))

		if strings.HasPrefix(trimmed, "```") {
			flushParagraph()
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			var body []string
			i++
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				body = append(body, lines[i])
				i++
			}
			bodyText := strings.Join(body, "\n")
			structure.CodeBlocks = append(structure.CodeBlocks, types.CodeBlockRef{Language: lang, Body: bodyText})
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementCodeBlock, Language: lang, Body: bodyText})
			i++
			continue
		}

		if m := djotHeadingRe.FindStringSubmatch(trimmed); m != nil {
			flushParagraph()
			level := len(m[1])
			text := strings.TrimSpace(m[2])
			structure.Headings = append(structure.Headings, types.HeadingRef{Level: level, Text: text})
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementHeading, Level: level, Text: text})
			if structure.Title == nil && level == 1 {
				t := text
				structure.Title = &t
			}
			i++
			continue
		}

		if trimmed == "" {
			flushParagraph()
			i++
			continue
		}

		paragraph = append(paragraph, trimmed)
		i++
	}
	flushParagraph()

	return structure, nil
}

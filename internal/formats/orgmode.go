// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import (
	"regexp"
	"strings"

	"github.com/reconforth/reconforth/internal/types"
)

var (
	orgHeadingRe  = regexp.MustCompile(`^(\*+)\s+(.*)$`)
	orgTitleRe    = regexp.MustCompile(`(?i)^#\+TITLE:\s*(.*)$`)
	orgBeginSrcRe = regexp.MustCompile(`(?i)^#\+BEGIN_SRC\s*(\S*)`)
	orgEndSrcRe   = regexp.MustCompile(`(?i)^#\+END_SRC`)
	orgLinkRe     = regexp.MustCompile(`\[\[([^\]]+)\](?:\[([^\]]*)\])?\]`)
)

// ParseOrgMode walks content line by line, recognizing #+TITLE:, asterisk
// headings, #+BEGIN_SRC/#+END_SRC blocks, and [[url][text]] links.
func ParseOrgMode(content string) (types.DocumentStructure, error) {
	structure := types.NewDocumentStructure(types.FormatOrgMode)

	lines := strings.Split(content, "\n")
	var paragraph []string

	flushParagraph := func() {
		text := strings.TrimSpace(strings.Join(paragraph, " "))
		paragraph = nil
		if text == "" {
			return
		}
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementParagraph, Text: text})
		for _, m := range orgLinkRe.FindAllStringSubmatch(text, -1) {
			url := m[1]
			linkText := m[2]
			if linkText == "" {
				linkText = url
			}
			structure.Links = append(structure.Links, types.LinkRef{Text: linkText, URL: url})
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementLink, LinkText: linkText, URL: url})
		}
	}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if m := orgTitleRe.FindStringSubmatch(trimmed); m != nil {
			flushParagraph()
			t := strings.TrimSpace(m[1])
			structure.Title = &t
			i++
			continue
		}

		if m := orgBeginSrcRe.FindStringSubmatch(trimmed); m != nil {
			flushParagraph()
			lang := m[1]
			var body []string
			i++
			for i < len(lines) && !orgEndSrcRe.MatchString(strings.TrimSpace(lines[i])) {
				body = append(body, lines[i])
				i++
			}
			bodyText := strings.Join(body, "\n")
			structure.CodeBlocks = append(structure.CodeBlocks, types.CodeBlockRef{Language: lang, Body: bodyText})
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementCodeBlock, Language: lang, Body: bodyText})
			i++ // skip #+END_SRC
			continue
		}

		if m := orgHeadingRe.FindStringSubmatch(trimmed); m != nil {
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

		if strings.HasPrefix(trimmed, "#+") {
			// Other org keywords (#+AUTHOR:, #+DATE:, ...) carry no structure.
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

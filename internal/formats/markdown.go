// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import (
	"regexp"
	"strings"

	"github.com/reconforth/reconforth/internal/types"
)

var (
	mdHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	mdLinkRe    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	mdImageRe   = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	mdRuleRe    = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})$`)
	mdListRe    = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+(.*)$`)
)

// ParseMarkdown walks content line by line, recognizing ATX headings,
// fenced code blocks, block quotes, list blocks, horizontal rules, and
// inline links/images within paragraphs.
func ParseMarkdown(content string) (types.DocumentStructure, error) {
	structure := types.NewDocumentStructure(types.FormatMarkdown)

	lines := strings.Split(content, "\n")
	var paragraph []string
	var listItems []string
	inList := false

	flushParagraph := func() {
		text := strings.TrimSpace(strings.Join(paragraph, " "))
		paragraph = nil
		if text == "" {
			return
		}
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementParagraph, Text: text})
		recordLinksAndImages(&structure, text)
	}
	flushList := func() {
		if !inList {
			return
		}
		structure.Elements = append(structure.Elements, types.Element{
			Kind: types.ElementList, Ordered: false, Items: append([]string{}, listItems...),
		})
		listItems = nil
		inList = false
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			flushParagraph()
			flushList()
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
			i++ // skip closing fence
			continue
		}

		if m := mdHeadingRe.FindStringSubmatch(trimmed); m != nil {
			flushParagraph()
			flushList()
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

		if mdRuleRe.MatchString(trimmed) {
			flushParagraph()
			flushList()
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementRule})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			flushParagraph()
			flushList()
			quoteText := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementQuote, Text: quoteText})
			i++
			continue
		}

		if m := mdListRe.FindStringSubmatch(line); m != nil {
			flushParagraph()
			inList = true
			listItems = append(listItems, strings.TrimSpace(m[1]))
			i++
			continue
		}

		if trimmed == "" {
			flushParagraph()
			flushList()
			i++
			continue
		}

		paragraph = append(paragraph, trimmed)
		i++
	}
	flushParagraph()
	flushList()

	return structure, nil
}

// recordLinksAndImages scans a block of text for Markdown link/image
// syntax and appends matches to structure.
func recordLinksAndImages(structure *types.DocumentStructure, text string) {
	for _, m := range mdImageRe.FindAllStringSubmatch(text, -1) {
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementImage, Alt: m[1], URL: m[2]})
	}
	withoutImages := mdImageRe.ReplaceAllString(text, "")
	for _, m := range mdLinkRe.FindAllStringSubmatch(withoutImages, -1) {
		structure.Links = append(structure.Links, types.LinkRef{Text: m[1], URL: m[2]})
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementLink, LinkText: m[1], URL: m[2]})
	}
}

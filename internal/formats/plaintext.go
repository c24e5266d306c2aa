// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import (
	"strings"

	"github.com/reconforth/reconforth/internal/types"
)

// ParsePlainText treats content as unstructured prose: the first line
// becomes the title and blank-line-separated blocks become paragraphs.
// No headings, links, or code blocks are recognized.
func ParsePlainText(content string) (types.DocumentStructure, error) {
	structure := types.NewDocumentStructure(types.FormatPlainText)

	lines := strings.SplitN(strings.TrimSpace(content), "\n", 2)
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		t := strings.TrimSpace(lines[0])
		structure.Title = &t
	}

	for _, block := range strings.Split(content, "\n\n") {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		structure.Elements = append(structure.Elements, types.Element{Kind: types.ElementParagraph, Text: text})
	}

	return structure, nil
}

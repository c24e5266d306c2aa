// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import "github.com/reconforth/reconforth/internal/types"

// ParseContent detects content's format and parses it.
func ParseContent(content string) (types.DocumentStructure, error) {
	return ParseContentWithFormat(content, Detect(content))
}

// ParseContentWithFormat parses content under an explicitly chosen format,
// bypassing detection. Formats without a hand-rolled parser yet (AsciiDoc,
// reStructuredText, Typst) report a runtime error rather than silently
// falling back to plain text.
func ParseContentWithFormat(content string, format string) (types.DocumentStructure, error) {
	switch format {
	case string(types.FormatMarkdown):
		return ParseMarkdown(content)
	case string(types.FormatDjot):
		return ParseDjot(content)
	case string(types.FormatOrgMode):
		return ParseOrgMode(content)
	case string(types.FormatPlainText):
		return ParsePlainText(content)
	default:
		return types.DocumentStructure{}, types.ErrRuntimef("format %s not yet supported", format)
	}
}

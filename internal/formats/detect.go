// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package formats sniffs a document's markup format from its content and
// parses Markdown, Djot, org-mode, and plain text into a uniform
// types.DocumentStructure. No Markdown/Djot/org-mode parsing library is
// available anywhere in the example corpus this module was grounded on,
// so all four parsers are hand-rolled line/token walkers rather than
// wrapping a third-party AST.
package formats

import "strings"

// Detect applies the format heuristics in priority order and returns the
// first match; PlainText is the fallback when nothing else matches.
func Detect(content string) string {
	trimmed := strings.TrimSpace(content)

	if isOrgMode(trimmed) {
		return "org"
	}
	if isAsciiDoc(trimmed) {
		return "adoc"
	}
	if isTypst(trimmed) {
		return "typ"
	}
	if isDjot(trimmed) {
		return "djot"
	}
	if isReStructuredText(trimmed) {
		return "rst"
	}
	if isMarkdown(trimmed) {
		return "md"
	}
	return "txt"
}

func isOrgMode(trimmed string) bool {
	if strings.HasPrefix(trimmed, "#+") || strings.Contains(trimmed, "\n#+") {
		return true
	}
	if strings.HasPrefix(trimmed, "* ") || strings.Contains(trimmed, "\n* ") {
		if strings.Contains(trimmed, "#+TITLE:") || strings.Contains(trimmed, "#+AUTHOR:") {
			return true
		}
	}
	return false
}

func isAsciiDoc(trimmed string) bool {
	return strings.HasPrefix(trimmed, "= ") ||
		strings.HasPrefix(trimmed, ":toc:") ||
		strings.Contains(trimmed, "\n= ") ||
		strings.Contains(trimmed, "----\n")
}

func isTypst(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") &&
		(strings.Contains(trimmed, "#{") || strings.Contains(trimmed, "#let"))
}

func isDjot(trimmed string) bool {
	return strings.Contains(trimmed, "{.") || strings.Contains(trimmed, "[^")
}

func isReStructuredText(trimmed string) bool {
	if strings.Contains(trimmed, ".. ") &&
		(strings.Contains(trimmed, "::") || strings.Contains(trimmed, ".. code-block::")) {
		return true
	}

	lines := strings.Split(trimmed, "\n")
	for i := 1; i < len(lines); i++ {
		if isUnderline(lines[i]) && len(lines[i]) >= len(lines[i-1]) {
			return true
		}
	}
	return false
}

// isUnderline reports whether line consists entirely of one of =, -, ~ and
// is at least 3 characters long.
func isUnderline(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, ch := range line {
		if ch != '=' && ch != '-' && ch != '~' {
			return false
		}
	}
	return true
}

func isMarkdown(trimmed string) bool {
	return strings.HasPrefix(trimmed, "# ") ||
		strings.HasPrefix(trimmed, "## ") ||
		strings.Contains(trimmed, "\n# ") ||
		strings.Contains(trimmed, "```") ||
		strings.Contains(trimmed, "[](") ||
		strings.Contains(trimmed, "![")
}

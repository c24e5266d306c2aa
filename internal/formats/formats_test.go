// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconforth/reconforth/internal/types"
)

func TestDetectMarkdown(t *testing.T) {
	assert.Equal(t, "md", Detect("# Title\n\nBody"))
}

func TestDetectOrgMode(t *testing.T) {
	assert.Equal(t, "org", Detect("#+TITLE: T\n* H"))
}

func TestDetectAsciiDoc(t *testing.T) {
	assert.Equal(t, "adoc", Detect("= Doc\n:toc:"))
}

func TestDetectPlainTextFallback(t *testing.T) {
	assert.Equal(t, "txt", Detect("just some words, nothing special"))
}

func TestDetectReStructuredText(t *testing.T) {
	assert.Equal(t, "rst", Detect("Title\n=====\n\nBody text"))
}

func TestParseMarkdownSample(t *testing.T) {
	content := "# A\n\nIntro text.\n\n## B\n\n```rust\nfn main() {}\n```\n"
	structure, err := ParseMarkdown(content)
	require.NoError(t, err)

	require.NotNil(t, structure.Title)
	assert.Equal(t, "A", *structure.Title)

	require.Len(t, structure.Headings, 2)
	assert.Equal(t, types.HeadingRef{Level: 1, Text: "A"}, structure.Headings[0])
	assert.Equal(t, types.HeadingRef{Level: 2, Text: "B"}, structure.Headings[1])

	require.Len(t, structure.CodeBlocks, 1)
	assert.Equal(t, "rust", structure.CodeBlocks[0].Language)
	assert.True(t, structure.HasCodeLanguage("rust"))
}

func TestParseMarkdownLinksAndImages(t *testing.T) {
	content := "See [the docs](https://example.com/docs) and ![logo](logo.png)."
	structure, err := ParseMarkdown(content)
	require.NoError(t, err)

	require.Len(t, structure.Links, 1)
	assert.Equal(t, "https://example.com/docs", structure.Links[0].URL)
	assert.Equal(t, []string{"https://example.com/docs"}, structure.ExternalLinks())

	var hasImage bool
	for _, el := range structure.Elements {
		if el.Kind == types.ElementImage {
			hasImage = true
			assert.Equal(t, "logo.png", el.URL)
		}
	}
	assert.True(t, hasImage)
}

func TestParseMarkdownList(t *testing.T) {
	content := "- one\n- two\n- three\n"
	structure, err := ParseMarkdown(content)
	require.NoError(t, err)

	var list *types.Element
	for i := range structure.Elements {
		if structure.Elements[i].Kind == types.ElementList {
			list = &structure.Elements[i]
		}
	}
	require.NotNil(t, list)
	assert.Equal(t, []string{"one", "two", "three"}, list.Items)
}

func TestParseDjotFootnoteIsNotLink(t *testing.T) {
	content := "Body text with a footnote ref[^1].\n\n[See](https://example.com)\n"
	structure, err := ParseDjot(content)
	require.NoError(t, err)
	require.Len(t, structure.Links, 1)
	assert.Equal(t, "https://example.com", structure.Links[0].URL)
}

func TestParseDjotAttributesStripped(t *testing.T) {
	content := "# Heading {.class #id}\n"
	structure, err := ParseDjot(content)
	require.NoError(t, err)
	require.Len(t, structure.Headings, 1)
	assert.Equal(t, "Heading", structure.Headings[0].Text)
}

func TestParseOrgModeSample(t *testing.T) {
	content := "#+TITLE: My Doc\n* Intro\nSome text.\n#+BEGIN_SRC go\nfunc main() {}\n#+END_SRC\n"
	structure, err := ParseOrgMode(content)
	require.NoError(t, err)

	require.NotNil(t, structure.Title)
	assert.Equal(t, "My Doc", *structure.Title)

	require.Len(t, structure.Headings, 1)
	assert.Equal(t, "Intro", structure.Headings[0].Text)

	require.Len(t, structure.CodeBlocks, 1)
	assert.Equal(t, "go", structure.CodeBlocks[0].Language)
}

func TestParseOrgModeLinks(t *testing.T) {
	content := "* H\n[[https://example.com][Example]]\n"
	structure, err := ParseOrgMode(content)
	require.NoError(t, err)
	require.Len(t, structure.Links, 1)
	assert.Equal(t, "Example", structure.Links[0].Text)
	assert.Equal(t, "https://example.com", structure.Links[0].URL)
}

func TestParsePlainText(t *testing.T) {
	content := "First line title\n\nFirst paragraph.\n\nSecond paragraph."
	structure, err := ParsePlainText(content)
	require.NoError(t, err)

	require.NotNil(t, structure.Title)
	assert.Equal(t, "First line title", *structure.Title)
	require.Len(t, structure.Elements, 3)
}

func TestParseContentDispatchesByDetection(t *testing.T) {
	structure, err := ParseContent("# Title\n\nBody")
	require.NoError(t, err)
	assert.Equal(t, types.FormatMarkdown, structure.Format)
}

func TestParseContentWithFormatUnsupported(t *testing.T) {
	_, err := ParseContentWithFormat("= Doc\n:toc:", "adoc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not yet supported")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconforth/reconforth/internal/types"
)

const markdownSample = "# A\n\nP\n\n## B\n\n```rust\nx\n```\n\n[site](https://example.com)"

func TestDocFormatDetectsMarkdown(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval("doc-format"))

	format, err := v.PopStr()
	require.NoError(t, err)
	assert.Equal(t, "md", format)

	docVal, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, types.KindDoc, docVal.Kind)
}

func TestDocTitle(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval("doc-title"))

	title, err := v.PopStr()
	require.NoError(t, err)
	assert.Equal(t, "A", title)
}

func TestDocHeadings(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval("doc-headings"))

	list, err := v.PopList()
	require.NoError(t, err)
	require.Len(t, list, 2)

	first, err := list[0].AsList()
	require.NoError(t, err)
	level, err := first[0].AsInt()
	require.NoError(t, err)
	text, err := first[1].AsStr()
	require.NoError(t, err)
	assert.EqualValues(t, 1, level)
	assert.Equal(t, "A", text)

	second, err := list[1].AsList()
	require.NoError(t, err)
	level2, err := second[0].AsInt()
	require.NoError(t, err)
	assert.EqualValues(t, 2, level2)
}

func TestDocCodeLanguages(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval("doc-code-languages"))

	list, err := v.PopList()
	require.NoError(t, err)
	require.Len(t, list, 1)
	lang, err := list[0].AsStr()
	require.NoError(t, err)
	assert.Equal(t, "rust", lang)
}

func TestDocExternalLinks(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval("doc-external-links"))

	list, err := v.PopList()
	require.NoError(t, err)
	require.Len(t, list, 1)
	url, err := list[0].AsStr()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", url)
}

func TestHasHeading(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval(`"B" has-heading?`))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.True(t, b)

	docVal, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, types.KindDoc, docVal.Kind)
}

func TestHasCodeLang(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", markdownSample)))
	require.NoError(t, v.Eval(`"python" has-code-lang?`))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.False(t, b)
}

func TestDocFormatUnsupportedReportsRuntimeError(t *testing.T) {
	v := newVM()
	v.Push(types.DocValue(makeDoc("README", "= Title\n:toc:\n\nbody")))
	err := v.Eval("doc-title")
	require.Error(t, err)
}

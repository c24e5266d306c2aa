// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/formats"
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

// registerStructure installs words that run format detection and
// lightweight markup parsing against a document's content, exposing its
// headings, links, and code blocks to rules.
func registerStructure(v *vm.VM) {
	v.RegisterNative("doc-format", wordDocFormat)
	v.RegisterNative("doc-title", wordDocTitle)
	v.RegisterNative("doc-headings", wordDocHeadings)
	v.RegisterNative("doc-code-languages", wordDocCodeLanguages)
	v.RegisterNative("doc-external-links", wordDocExternalLinks)
	v.RegisterNative("has-heading?", wordHasHeading)
	v.RegisterNative("has-code-lang?", wordHasCodeLang)
}

func parseDocStructure(doc types.Document) (types.DocumentStructure, error) {
	return formats.ParseContent(doc.Content)
}

// doc-format ( doc -- doc format ), non-consuming. format is the detected
// format's short name ("org", "adoc", "typ", "djot", "rst", "md", or "txt").
func wordDocFormat(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))
	v.Push(types.StrValue(formats.Detect(doc.Content)))
	return nil
}

// doc-title ( doc -- doc title-or-nil ), non-consuming.
func wordDocTitle(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	if structure.Title == nil {
		v.Push(types.NilValue())
		return nil
	}
	v.Push(types.StrValue(*structure.Title))
	return nil
}

// doc-headings ( doc -- doc list ), non-consuming. list holds one
// two-element list `[level, text]` per heading, in document order.
func wordDocHeadings(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	items := make([]types.Value, len(structure.Headings))
	for i, h := range structure.Headings {
		items[i] = types.ListValue([]types.Value{
			types.IntValue(int64(h.Level)),
			types.StrValue(h.Text),
		})
	}
	v.Push(types.ListValue(items))
	return nil
}

// doc-code-languages ( doc -- doc list ), non-consuming. list holds the
// language tag of each code block, in document order (empty string for an
// untagged fence).
func wordDocCodeLanguages(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	items := make([]types.Value, len(structure.CodeBlocks))
	for i, cb := range structure.CodeBlocks {
		items[i] = types.StrValue(cb.Language)
	}
	v.Push(types.ListValue(items))
	return nil
}

// doc-external-links ( doc -- doc list ), non-consuming. list holds the
// URL of each link whose scheme is http:// or https://, in document order.
func wordDocExternalLinks(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	links := structure.ExternalLinks()
	items := make([]types.Value, len(links))
	for i, url := range links {
		items[i] = types.StrValue(url)
	}
	v.Push(types.ListValue(items))
	return nil
}

// has-heading? ( doc text -- doc bool ), non-consuming on doc. True when
// some heading's text contains text.
func wordHasHeading(v *vm.VM) error {
	text, err := v.PopStr()
	if err != nil {
		return err
	}
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(structure.HasHeading(text)))
	return nil
}

// has-code-lang? ( doc lang -- doc bool ), non-consuming on doc. True when
// some code block's language tag equals lang exactly.
func wordHasCodeLang(v *vm.VM) error {
	lang, err := v.PopStr()
	if err != nil {
		return err
	}
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	structure, err := parseDocStructure(doc)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(structure.HasCodeLanguage(lang)))
	return nil
}

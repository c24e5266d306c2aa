// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerDocuments(v *vm.VM) {
	v.RegisterNative("doc-hash", wordDocHash)
	v.RegisterNative("doc-type", wordDocType)
	v.RegisterNative("doc-path", wordDocPath)
	v.RegisterNative("doc-content", wordDocContent)
	v.RegisterNative("doc-version", wordDocVersion)
	v.RegisterNative("doc-canonical?", wordDocCanonical)
	v.RegisterNative("docs-same-hash?", wordDocsSameHash)
	v.RegisterNative("docs-same-type?", wordDocsSameType)
}

// doc-hash ( doc -- hash )
func wordDocHash(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.HashValue(doc.Hash))
	return nil
}

// doc-type ( doc -- type )
func wordDocType(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(doc.DocType()))
	return nil
}

// doc-path ( doc -- path )
func wordDocPath(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(doc.Metadata.Path))
	return nil
}

// doc-content ( doc -- content )
func wordDocContent(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(doc.Content))
	return nil
}

// doc-version ( doc -- version-or-nil )
func wordDocVersion(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	if doc.Metadata.Version == nil {
		v.Push(types.NilValue())
		return nil
	}
	v.Push(types.StrValue(*doc.Metadata.Version))
	return nil
}

// doc-canonical? ( doc -- bool )
func wordDocCanonical(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(doc.IsCanonical()))
	return nil
}

// docs-same-hash? ( doc1 doc2 -- bool )
func wordDocsSameHash(v *vm.VM) error {
	doc2, err := v.PopDoc()
	if err != nil {
		return err
	}
	doc1, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(doc1.Hash == doc2.Hash))
	return nil
}

// docs-same-type? ( doc1 doc2 -- bool )
func wordDocsSameType(v *vm.VM) error {
	doc2, err := v.PopDoc()
	if err != nil {
		return err
	}
	doc1, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(doc1.DocType() == doc2.DocType()))
	return nil
}

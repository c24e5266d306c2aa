// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package vm

import "github.com/reconforth/reconforth/internal/types"

// NativeFunc is a host-implemented word: it receives the VM by mutable
// handle and performs whatever stack effect it documents.
type NativeFunc func(*VM) error

// WordDef is either a native procedure or a user-defined token body.
// Exactly one of Native or Body is set.
type WordDef struct {
	Native NativeFunc
	Body   []types.Token
	IsUser bool
}

// Dictionary maps word names to their definitions.
type Dictionary map[string]WordDef

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package builtins wires the standard word library onto a VM: stack
// manipulation, arithmetic, comparison, logic, control flow, strings,
// lists, documents, document-structure inspection, bundles, packs,
// enforcement actions, and hashing.
package builtins

import "github.com/reconforth/reconforth/internal/vm"

// Register installs every built-in word into v. A fresh VM (see
// internal/vm.New) has an empty dictionary; callers must call Register
// before evaluating any program that uses a standard word.
func Register(v *vm.VM) {
	registerStack(v)
	registerArithmetic(v)
	registerComparison(v)
	registerLogic(v)
	registerControl(v)
	registerStrings(v)
	registerLists(v)
	registerDocuments(v)
	registerStructure(v)
	registerBundles(v)
	registerPacks(v)
	registerEnforcement(v)
	registerHashing(v)
	registerDebug(v)
	registerSupplemental(v)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/gobwas/glob"

	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

// registerSupplemental installs words that extend the standard library
// beyond the documented stack effects: glob-style string matching and
// semantic-version constraint checks against doc-version.
func registerSupplemental(v *vm.VM) {
	v.RegisterNative("str-glob?", wordStrGlob)
	v.RegisterNative("doc-version-satisfies?", wordDocVersionSatisfies)
}

// maxGlobPatternLen and maxGlobWildcards bound the cost of a single glob
// match the same way policy pattern compilation does.
const (
	maxGlobPatternLen = 100
	maxGlobWildcards  = 5
)

func validateGlobPattern(pattern string) error {
	if len(pattern) > maxGlobPatternLen {
		return types.ErrRuntimef("glob pattern exceeds maximum length of %d", maxGlobPatternLen)
	}
	if strings.Contains(pattern, "[") || strings.Contains(pattern, "{") {
		return types.ErrRuntimef("glob pattern contains a disallowed class or alternation: %q", pattern)
	}
	if strings.Contains(pattern, "**") {
		return types.ErrRuntimef("glob pattern contains globstar (not allowed): %q", pattern)
	}
	wildcards := 0
	for _, ch := range pattern {
		if ch == '*' || ch == '?' {
			wildcards++
		}
	}
	if wildcards > maxGlobWildcards {
		return types.ErrRuntimef("glob pattern has %d wildcards (maximum %d)", wildcards, maxGlobWildcards)
	}
	return nil
}

// str-glob? ( s pattern -- bool )
func wordStrGlob(v *vm.VM) error {
	pattern, err := v.PopStr()
	if err != nil {
		return err
	}
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	if err := validateGlobPattern(pattern); err != nil {
		return err
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return types.ErrRuntimef("invalid glob pattern %q: %s", pattern, err)
	}
	v.Push(types.BoolValue(g.Match(s)))
	return nil
}

// doc-version-satisfies? ( doc constraint -- doc bool ), non-consuming on
// doc. A Nil/absent version never satisfies a constraint.
func wordDocVersionSatisfies(v *vm.VM) error {
	constraint, err := v.PopStr()
	if err != nil {
		return err
	}
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	v.Push(types.DocValue(doc))

	if doc.Metadata.Version == nil {
		v.Push(types.BoolValue(false))
		return nil
	}
	ver, err := semver.NewVersion(*doc.Metadata.Version)
	if err != nil {
		v.Push(types.BoolValue(false))
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return types.ErrRuntimef("invalid version constraint %q: %s", constraint, err)
	}
	v.Push(types.BoolValue(c.Check(ver)))
	return nil
}

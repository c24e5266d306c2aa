// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconforth/reconforth/internal/errutil"
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func newVM() *vm.VM {
	v := vm.New()
	Register(v)
	return v
}

func TestStackWords(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("1 2 dup"))
	top, err := v.Pop()
	require.NoError(t, err)
	assert.EqualValues(t, 2, top.Int)
	assert.Equal(t, 3, v.Depth())
}

func TestDupDropIsNoOp(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("42 dup drop"))
	assert.Equal(t, 1, v.Depth())
	n, err := v.PopInt()
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)
}

func TestSwapSwapIsNoOp(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("1 2 swap swap"))
	b, _ := v.PopInt()
	a, _ := v.PopInt()
	assert.EqualValues(t, 2, b)
	assert.EqualValues(t, 1, a)
}

func TestArithmetic(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("5 3 +"))
	n, err := v.PopInt()
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)
}

func TestDivisionByZero(t *testing.T) {
	v := newVM()
	err := v.Eval("5 0 /")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, types.CodeRuntimeError)
}

func TestModuloByZero(t *testing.T) {
	v := newVM()
	err := v.Eval("5 0 mod")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, types.CodeRuntimeError)
}

func TestComparisonCommutes(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("3 4 ="))
	a, err := v.PopBool()
	require.NoError(t, err)

	require.NoError(t, v.Eval("4 3 ="))
	b, err := v.PopBool()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.False(t, a)
}

func TestEqualityAcrossKindsIsFalse(t *testing.T) {
	v := newVM()
	v.Push(types.IntValue(1))
	v.Push(types.StrValue("1"))
	require.NoError(t, v.Eval("="))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.False(t, b)
}

func TestControlIf(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("true [ 1 ] [ 2 ] if"))
	n, err := v.PopInt()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStringWords(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval(`"hello" str-upper "HELLO" =`))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestStrLenIsByteLength(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval(`"café" str-len`))
	n, err := v.PopInt()
	require.NoError(t, err)
	assert.EqualValues(t, 5, n) // é is two bytes in UTF-8
}

func TestListMap(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("list-new 1 list-push 2 list-push 3 list-push [ 2 * ] map"))
	list, err := v.PopList()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.EqualValues(t, 2, list[0].Int)
	assert.EqualValues(t, 4, list[1].Int)
	assert.EqualValues(t, 6, list[2].Int)
}

func TestListGetOutOfRangeIsNil(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("list-new 1 list-push 5 list-get"))
	val, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, types.KindNil, val.Kind)
}

func TestReduceSum(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval("list-new 1 list-push 2 list-push 3 list-push 0 [ + ] reduce"))
	n, err := v.PopInt()
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
}

func TestErrorBang(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval(`"Missing README" error!`))
	result := v.Validation()
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing README", result.Errors[0].Message)
}

func TestHashContent(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval(`"hello" hash-content`))
	h, err := v.PopStr()
	require.NoError(t, err)
	assert.Equal(t, Sha256Hex("hello"), h)
	assert.Len(t, h, 64)
}

func makeDoc(docType, content string) types.Document {
	return types.Document{
		Hash:    Sha256Hex(content),
		Content: content,
		Metadata: types.DocumentMetadata{
			Path:            "/" + docType,
			DocumentType:    docType,
			CanonicalSource: "Git",
			Repository:      "repo",
			Branch:          "main",
		},
	}
}

func TestBundleValidateMissingRequired(t *testing.T) {
	v := newVM()
	bundle := types.NewBundle().Add(makeDoc("README", "hello"))
	v.LoadBundle(bundle)
	require.NoError(t, v.Eval(`"pkg" pack-new "LICENSE" pack-require swap pack-ship`))

	resultVal, err := v.Pop()
	require.NoError(t, err)
	result, err := resultVal.AsValidationResult()
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing required document: LICENSE", result.Errors[0].Message)

	bundleVal, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, types.KindBundle, bundleVal.Kind)
}

func TestBundleValidateSatisfiedRequirement(t *testing.T) {
	v := newVM()
	bundle := types.NewBundle().Add(makeDoc("README", "hello"))
	v.LoadBundle(bundle)
	require.NoError(t, v.Eval(`"pkg" pack-new "README" pack-require swap pack-ship`))

	resultVal, err := v.Pop()
	require.NoError(t, err)
	result, err := resultVal.AsValidationResult()
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
}

func TestBundleValidateEmptyPackAlwaysSucceeds(t *testing.T) {
	v := newVM()
	bundle := types.NewBundle().Add(makeDoc("README", "hello")).Add(makeDoc("LICENSE", "mit"))
	v.LoadBundle(bundle)
	require.NoError(t, v.Eval(`"empty" pack-new swap bundle-validate`))

	resultVal, err := v.Pop()
	require.NoError(t, err)
	result, err := resultVal.AsValidationResult()
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Suggestions)
}

func TestBundleValidateRuleFailureIsDowngraded(t *testing.T) {
	v := newVM()
	bundle := types.NewBundle().Add(makeDoc("README", "hello"))
	v.LoadBundle(bundle)
	// The rule body divides by zero, which raises an execution error inside
	// the rule; bundle-validate must downgrade that to a validation error
	// and continue rather than aborting eval.
	require.NoError(t, v.Eval(`"pkg" pack-new "broken" [ drop 1 0 / ] pack-rule swap pack-ship`))

	resultVal, err := v.Pop()
	require.NoError(t, err)
	result, err := resultVal.AsValidationResult()
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "Rule 'broken' failed")
}

func TestStrGlob(t *testing.T) {
	v := newVM()
	require.NoError(t, v.Eval(`"docs/readme.md" "docs/*.md" str-glob?`))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestDocVersionSatisfies(t *testing.T) {
	v := newVM()
	version := "2.3.0"
	doc := makeDoc("README", "hello")
	doc.Metadata.Version = &version
	v.Push(types.DocValue(doc))
	require.NoError(t, v.Eval(`">=2.0.0" doc-version-satisfies?`))
	b, err := v.PopBool()
	require.NoError(t, err)
	assert.True(t, b)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"fmt"

	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerBundles(v *vm.VM) {
	v.RegisterNative("bundle-new", wordBundleNew)
	v.RegisterNative("bundle-add", wordBundleAdd)
	v.RegisterNative("bundle-docs", wordBundleDocs)
	v.RegisterNative("bundle-count", wordBundleCount)
	v.RegisterNative("bundle-has-type?", wordBundleHasType)
	v.RegisterNative("bundle-get-type", wordBundleGetType)
	v.RegisterNative("bundle-validate", wordBundleValidate)
}

// bundle-new ( -- bundle )
func wordBundleNew(v *vm.VM) error {
	v.Push(types.BundleValue(types.NewBundle()))
	return nil
}

// bundle-add ( bundle doc -- bundle' )
func wordBundleAdd(v *vm.VM) error {
	doc, err := v.PopDoc()
	if err != nil {
		return err
	}
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	v.Push(types.BundleValue(bundle.Add(doc)))
	return nil
}

// bundle-docs ( bundle -- list )
func wordBundleDocs(v *vm.VM) error {
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	items := make([]types.Value, len(bundle.Documents))
	for i, doc := range bundle.Documents {
		items[i] = types.DocValue(doc)
	}
	v.Push(types.ListValue(items))
	return nil
}

// bundle-count ( bundle -- bundle n ), non-consuming.
func wordBundleCount(v *vm.VM) error {
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	v.Push(types.BundleValue(bundle))
	v.Push(types.IntValue(int64(bundle.Count())))
	return nil
}

// bundle-has-type? ( bundle type -- bundle bool ), non-consuming.
func wordBundleHasType(v *vm.VM) error {
	docType, err := v.PopStr()
	if err != nil {
		return err
	}
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	v.Push(types.BundleValue(bundle))
	v.Push(types.BoolValue(bundle.HasType(docType)))
	return nil
}

// bundle-get-type ( bundle type -- bundle doc-or-nil ), non-consuming.
func wordBundleGetType(v *vm.VM) error {
	docType, err := v.PopStr()
	if err != nil {
		return err
	}
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	v.Push(types.BundleValue(bundle))
	if doc, ok := bundle.GetType(docType); ok {
		v.Push(types.DocValue(doc))
	} else {
		v.Push(types.NilValue())
	}
	return nil
}

// bundle-validate ( pack bundle -- bundle result )
//
// 1. Reset the validation accumulator.
// 2. For each required type not present in the bundle, report an error.
// 3. For each rule, run its body with a clone of the bundle on top of the
//    stack; an execution error downgrades to a validation error rather
//    than aborting the whole evaluation; then pop one value defensively
//    regardless of what the rule body actually left behind.
// 4. Snapshot the accumulator, push the bundle back, then push the
//    snapshot as a ValidationResult.
func wordBundleValidate(v *vm.VM) error {
	bundle, err := v.PopBundle()
	if err != nil {
		return err
	}
	pack, err := v.PopPack()
	if err != nil {
		return err
	}

	v.ResetValidation()

	for _, required := range pack.Required {
		if !bundle.HasType(required) {
			v.ReportError(fmt.Sprintf("Missing required document: %s", required))
		}
	}

	for _, rule := range pack.Rules {
		v.Push(types.BundleValue(bundle))
		if runErr := v.CallQuotation(rule.Body); runErr != nil {
			v.ReportError(fmt.Sprintf("Rule '%s' failed: %s", rule.Name, runErr.Error()))
		}
		// Defensive cleanup: pop exactly one value regardless of the
		// rule's actual stack effect; an empty stack here is not an error.
		_, _ = v.Pop()
	}

	result := v.Validation()
	v.Push(types.BundleValue(bundle))
	v.Push(types.ValidationResultValue(result))
	return nil
}

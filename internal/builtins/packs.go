// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerPacks(v *vm.VM) {
	v.RegisterNative("pack-new", wordPackNew)
	v.RegisterNative("pack-require", wordPackRequire)
	v.RegisterNative("pack-optional", wordPackOptional)
	v.RegisterNative("pack-rule", wordPackRule)
	v.RegisterNative("pack-ship", wordBundleValidate) // alias for bundle-validate
}

// pack-new ( name -- pack )
func wordPackNew(v *vm.VM) error {
	name, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.PackValue(types.NewPackSpec(name)))
	return nil
}

// pack-require ( pack type -- pack' )
func wordPackRequire(v *vm.VM) error {
	docType, err := v.PopStr()
	if err != nil {
		return err
	}
	pack, err := v.PopPack()
	if err != nil {
		return err
	}
	v.Push(types.PackValue(pack.Require(docType)))
	return nil
}

// pack-optional ( pack type -- pack' )
func wordPackOptional(v *vm.VM) error {
	docType, err := v.PopStr()
	if err != nil {
		return err
	}
	pack, err := v.PopPack()
	if err != nil {
		return err
	}
	v.Push(types.PackValue(pack.Optionalize(docType)))
	return nil
}

// pack-rule ( pack name quote -- pack' )
func wordPackRule(v *vm.VM) error {
	quote, err := v.PopQuotation()
	if err != nil {
		return err
	}
	name, err := v.PopStr()
	if err != nil {
		return err
	}
	pack, err := v.PopPack()
	if err != nil {
		return err
	}
	v.Push(types.PackValue(pack.AddRule(name, quote)))
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import "github.com/reconforth/reconforth/internal/vm"

func registerControl(v *vm.VM) {
	v.RegisterNative("if", wordIf)
	v.RegisterNative("when", wordWhen)
	v.RegisterNative("unless", wordUnless)
	v.RegisterNative("call", wordCall)
}

// if ( cond then-quote else-quote -- )
func wordIf(v *vm.VM) error {
	elseQ, err := v.PopQuotation()
	if err != nil {
		return err
	}
	thenQ, err := v.PopQuotation()
	if err != nil {
		return err
	}
	cond, err := v.PopBool()
	if err != nil {
		return err
	}
	if cond {
		return v.CallQuotation(thenQ)
	}
	return v.CallQuotation(elseQ)
}

// when ( cond body -- )
func wordWhen(v *vm.VM) error {
	body, err := v.PopQuotation()
	if err != nil {
		return err
	}
	cond, err := v.PopBool()
	if err != nil {
		return err
	}
	if cond {
		return v.CallQuotation(body)
	}
	return nil
}

// unless ( cond body -- )
func wordUnless(v *vm.VM) error {
	body, err := v.PopQuotation()
	if err != nil {
		return err
	}
	cond, err := v.PopBool()
	if err != nil {
		return err
	}
	if !cond {
		return v.CallQuotation(body)
	}
	return nil
}

// call ( q -- )
func wordCall(v *vm.VM) error {
	q, err := v.PopQuotation()
	if err != nil {
		return err
	}
	return v.CallQuotation(q)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import "github.com/reconforth/reconforth/internal/vm"

func registerEnforcement(v *vm.VM) {
	v.RegisterNative("error!", wordError)
	v.RegisterNative("warn!", wordWarn)
	v.RegisterNative("suggest!", wordSuggest)
	v.RegisterNative("require!", wordRequire)
}

// error! ( msg -- )
func wordError(v *vm.VM) error {
	msg, err := v.PopStr()
	if err != nil {
		return err
	}
	v.ReportError(msg)
	return nil
}

// warn! ( msg -- )
func wordWarn(v *vm.VM) error {
	msg, err := v.PopStr()
	if err != nil {
		return err
	}
	v.ReportWarning(msg)
	return nil
}

// suggest! ( msg -- )
func wordSuggest(v *vm.VM) error {
	msg, err := v.PopStr()
	if err != nil {
		return err
	}
	v.ReportSuggestion(msg)
	return nil
}

// require! ( cond msg -- ); emits error! when cond is false.
func wordRequire(v *vm.VM) error {
	msg, err := v.PopStr()
	if err != nil {
		return err
	}
	cond, err := v.PopBool()
	if err != nil {
		return err
	}
	if !cond {
		v.ReportError(msg)
	}
	return nil
}

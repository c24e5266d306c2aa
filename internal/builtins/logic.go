// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerLogic(v *vm.VM) {
	v.RegisterNative("and", wordAnd)
	v.RegisterNative("or", wordOr)
	v.RegisterNative("not", wordNot)
	v.RegisterNative("true", wordTrue)
	v.RegisterNative("false", wordFalse)
	v.RegisterNative("nil", wordNil)
}

func wordAnd(v *vm.VM) error {
	b, err := v.PopBool()
	if err != nil {
		return err
	}
	a, err := v.PopBool()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a && b))
	return nil
}

func wordOr(v *vm.VM) error {
	b, err := v.PopBool()
	if err != nil {
		return err
	}
	a, err := v.PopBool()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a || b))
	return nil
}

func wordNot(v *vm.VM) error {
	a, err := v.PopBool()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(!a))
	return nil
}

func wordTrue(v *vm.VM) error {
	v.Push(types.BoolValue(true))
	return nil
}

func wordFalse(v *vm.VM) error {
	v.Push(types.BoolValue(false))
	return nil
}

func wordNil(v *vm.VM) error {
	v.Push(types.NilValue())
	return nil
}

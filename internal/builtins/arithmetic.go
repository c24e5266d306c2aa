// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerArithmetic(v *vm.VM) {
	v.RegisterNative("+", wordAdd)
	v.RegisterNative("-", wordSub)
	v.RegisterNative("*", wordMul)
	v.RegisterNative("/", wordDiv)
	v.RegisterNative("mod", wordMod)
	v.RegisterNative("abs", wordAbs)
	v.RegisterNative("negate", wordNegate)
}

func popTwoInts(v *vm.VM) (int64, int64, error) {
	b, err := v.PopInt()
	if err != nil {
		return 0, 0, err
	}
	a, err := v.PopInt()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func wordAdd(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.IntValue(a + b))
	return nil
}

func wordSub(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.IntValue(a - b))
	return nil
}

func wordMul(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.IntValue(a * b))
	return nil
}

func wordDiv(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	if b == 0 {
		return types.ErrRuntime("division by zero")
	}
	v.Push(types.IntValue(a / b))
	return nil
}

func wordMod(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	if b == 0 {
		return types.ErrRuntime("modulo by zero")
	}
	v.Push(types.IntValue(a % b))
	return nil
}

func wordAbs(v *vm.VM) error {
	n, err := v.PopInt()
	if err != nil {
		return err
	}
	if n < 0 {
		n = -n
	}
	v.Push(types.IntValue(n))
	return nil
}

func wordNegate(v *vm.VM) error {
	n, err := v.PopInt()
	if err != nil {
		return err
	}
	v.Push(types.IntValue(-n))
	return nil
}

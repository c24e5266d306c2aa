// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerComparison(v *vm.VM) {
	v.RegisterNative("=", wordEq)
	v.RegisterNative("<>", wordNeq)
	v.RegisterNative("<", wordLt)
	v.RegisterNative(">", wordGt)
	v.RegisterNative("<=", wordLe)
	v.RegisterNative(">=", wordGe)
}

// valuesEqual implements structural equality across Int/Str/Bool/Hash/Nil
// pairs; any other combination of variants (including same-kind Doc,
// Bundle, etc.) is not comparable and yields false.
func valuesEqual(a, b types.Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case types.KindInt:
		return a.Int == b.Int
	case types.KindStr:
		return a.Str == b.Str
	case types.KindHash:
		return a.Str == b.Str
	case types.KindBool:
		return a.Bool == b.Bool
	case types.KindNil:
		return true
	default:
		return false
	}
}

func wordEq(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(valuesEqual(a, b)))
	return nil
}

func wordNeq(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(!valuesEqual(a, b)))
	return nil
}

func wordLt(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a < b))
	return nil
}

func wordGt(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a > b))
	return nil
}

func wordLe(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a <= b))
	return nil
}

func wordGe(v *vm.VM) error {
	a, b, err := popTwoInts(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(a >= b))
	return nil
}

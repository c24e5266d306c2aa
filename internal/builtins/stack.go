// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerStack(v *vm.VM) {
	v.RegisterNative("dup", wordDup)
	v.RegisterNative("drop", wordDrop)
	v.RegisterNative("swap", wordSwap)
	v.RegisterNative("over", wordOver)
	v.RegisterNative("rot", wordRot)
	v.RegisterNative("nip", wordNip)
	v.RegisterNative("tuck", wordTuck)
	v.RegisterNative("depth", wordDepth)
}

// dup ( x -- x x )
func wordDup(v *vm.VM) error {
	x, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(x)
	v.Push(x)
	return nil
}

// drop ( x -- )
func wordDrop(v *vm.VM) error {
	_, err := v.Pop()
	return err
}

// swap ( a b -- b a )
func wordSwap(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(b)
	v.Push(a)
	return nil
}

// over ( a b -- a b a )
func wordOver(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(a)
	v.Push(b)
	v.Push(a)
	return nil
}

// rot ( a b c -- b c a )
func wordRot(v *vm.VM) error {
	c, err := v.Pop()
	if err != nil {
		return err
	}
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(b)
	v.Push(c)
	v.Push(a)
	return nil
}

// nip ( a b -- b )
func wordNip(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	if _, err := v.Pop(); err != nil {
		return err
	}
	v.Push(b)
	return nil
}

// tuck ( a b -- b a b )
func wordTuck(v *vm.VM) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}
	v.Push(b)
	v.Push(a)
	v.Push(b)
	return nil
}

// depth ( -- n )
func wordDepth(v *vm.VM) error {
	v.Push(types.IntValue(int64(v.Depth())))
	return nil
}

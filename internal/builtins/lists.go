// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerLists(v *vm.VM) {
	v.RegisterNative("list-new", wordListNew)
	v.RegisterNative("list-push", wordListPush)
	v.RegisterNative("list-pop", wordListPop)
	v.RegisterNative("list-get", wordListGet)
	v.RegisterNative("list-len", wordListLen)
	v.RegisterNative("each", wordEach)
	v.RegisterNative("map", wordMap)
	v.RegisterNative("filter", wordFilter)
	v.RegisterNative("reduce", wordReduce)
}

// list-new ( -- [] )
func wordListNew(v *vm.VM) error {
	v.Push(types.ListValue(nil))
	return nil
}

// list-push ( list x -- list' )
func wordListPush(v *vm.VM) error {
	x, err := v.Pop()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	v.Push(types.ListValue(append(list, x)))
	return nil
}

// list-pop ( list -- list' x-or-nil )
func wordListPop(v *vm.VM) error {
	list, err := v.PopList()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		v.Push(types.ListValue(list))
		v.Push(types.NilValue())
		return nil
	}
	last := len(list) - 1
	v.Push(types.ListValue(list[:last]))
	v.Push(list[last])
	return nil
}

// list-get ( list i -- x-or-nil ); out-of-range yields Nil.
func wordListGet(v *vm.VM) error {
	idx, err := v.PopInt()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	if idx < 0 || int(idx) >= len(list) {
		v.Push(types.NilValue())
		return nil
	}
	v.Push(list[idx])
	return nil
}

// list-len ( list -- list n ), non-consuming.
func wordListLen(v *vm.VM) error {
	list, err := v.PopList()
	if err != nil {
		return err
	}
	v.Push(types.ListValue(list))
	v.Push(types.IntValue(int64(len(list))))
	return nil
}

// each ( list quote -- )
func wordEach(v *vm.VM) error {
	q, err := v.PopQuotation()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	for _, el := range list {
		v.Push(el)
		if err := v.CallQuotation(q); err != nil {
			return err
		}
	}
	return nil
}

// map ( list quote -- list' )
func wordMap(v *vm.VM) error {
	q, err := v.PopQuotation()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	result := make([]types.Value, 0, len(list))
	for _, el := range list {
		v.Push(el)
		if err := v.CallQuotation(q); err != nil {
			return err
		}
		mapped, err := v.Pop()
		if err != nil {
			return err
		}
		result = append(result, mapped)
	}
	v.Push(types.ListValue(result))
	return nil
}

// filter ( list quote -- list' ); quote's result is coerced via pop_bool.
func wordFilter(v *vm.VM) error {
	q, err := v.PopQuotation()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	result := make([]types.Value, 0, len(list))
	for _, el := range list {
		v.Push(el)
		if err := v.CallQuotation(q); err != nil {
			return err
		}
		keep, err := v.PopBool()
		if err != nil {
			return err
		}
		if keep {
			result = append(result, el)
		}
	}
	v.Push(types.ListValue(result))
	return nil
}

// reduce ( list init quote -- result ). init is pushed, then for each
// element the element is pushed and quote is run; the quote is expected to
// consume the running accumulator and the element, leaving the new
// accumulator — so the final stack top is the result with no extra pop.
func wordReduce(v *vm.VM) error {
	q, err := v.PopQuotation()
	if err != nil {
		return err
	}
	init, err := v.Pop()
	if err != nil {
		return err
	}
	list, err := v.PopList()
	if err != nil {
		return err
	}
	v.Push(init)
	for _, el := range list {
		v.Push(el)
		if err := v.CallQuotation(q); err != nil {
			return err
		}
	}
	return nil
}

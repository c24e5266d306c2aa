// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"strings"

	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerStrings(v *vm.VM) {
	v.RegisterNative("str-concat", wordStrConcat)
	v.RegisterNative("str-contains?", wordStrContains)
	v.RegisterNative("str-starts?", wordStrStarts)
	v.RegisterNative("str-ends?", wordStrEnds)
	v.RegisterNative("str-split", wordStrSplit)
	v.RegisterNative("str-trim", wordStrTrim)
	v.RegisterNative("str-upper", wordStrUpper)
	v.RegisterNative("str-lower", wordStrLower)
	v.RegisterNative("str-len", wordStrLen)
}

func popTwoStrs(v *vm.VM) (string, string, error) {
	b, err := v.PopStr()
	if err != nil {
		return "", "", err
	}
	a, err := v.PopStr()
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// str-concat ( a b -- a+b )
func wordStrConcat(v *vm.VM) error {
	a, b, err := popTwoStrs(v)
	if err != nil {
		return err
	}
	v.Push(types.StrValue(a + b))
	return nil
}

// str-contains? ( s sub -- bool )
func wordStrContains(v *vm.VM) error {
	s, sub, err := popTwoStrs(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(strings.Contains(s, sub)))
	return nil
}

// str-starts? ( s prefix -- bool )
func wordStrStarts(v *vm.VM) error {
	s, prefix, err := popTwoStrs(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(strings.HasPrefix(s, prefix)))
	return nil
}

// str-ends? ( s suffix -- bool )
func wordStrEnds(v *vm.VM) error {
	s, suffix, err := popTwoStrs(v)
	if err != nil {
		return err
	}
	v.Push(types.BoolValue(strings.HasSuffix(s, suffix)))
	return nil
}

// str-split ( s delim -- list )
func wordStrSplit(v *vm.VM) error {
	s, delim, err := popTwoStrs(v)
	if err != nil {
		return err
	}
	parts := strings.Split(s, delim)
	items := make([]types.Value, len(parts))
	for i, p := range parts {
		items[i] = types.StrValue(p)
	}
	v.Push(types.ListValue(items))
	return nil
}

// str-trim ( s -- s' )
func wordStrTrim(v *vm.VM) error {
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(strings.TrimSpace(s)))
	return nil
}

// str-upper ( s -- s' )
func wordStrUpper(v *vm.VM) error {
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(strings.ToUpper(s)))
	return nil
}

// str-lower ( s -- s' )
func wordStrLower(v *vm.VM) error {
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.StrValue(strings.ToLower(s)))
	return nil
}

// str-len ( s -- n ) byte length, not rune or grapheme count.
func wordStrLen(v *vm.VM) error {
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.IntValue(int64(len(s))))
	return nil
}

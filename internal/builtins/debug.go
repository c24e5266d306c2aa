// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"fmt"
	"strings"

	"github.com/reconforth/reconforth/internal/vm"
)

func registerDebug(v *vm.VM) {
	v.RegisterNative(".s", wordPrintStack)
	v.RegisterNative(".v", wordPrintValidation)
}

// .s ( -- ) prints the data stack, bottom to top, without consuming it.
func wordPrintStack(v *vm.VM) error {
	stack := v.Stack()
	rendered := make([]string, len(stack))
	for i, val := range stack {
		rendered[i] = val.String()
	}
	fmt.Printf("<%d> %s\n", len(stack), strings.Join(rendered, " "))
	return nil
}

// .v ( -- ) prints the current validation accumulator without resetting it.
func wordPrintValidation(v *vm.VM) error {
	result := v.Validation()
	fmt.Printf("success=%t errors=%d warnings=%d suggestions=%d\n",
		result.Success, len(result.Errors), len(result.Warnings), len(result.Suggestions))
	return nil
}

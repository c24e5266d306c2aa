// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Command reconforth is a thin CLI around the reconforth package's own
// entry points: running a program and running a bundle against a pack.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

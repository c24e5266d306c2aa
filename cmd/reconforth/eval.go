// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reconforth/reconforth/pkg/reconforth"
)

// newEvalCmd creates the eval subcommand.
func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <file.rf>",
		Short: "Run a ReconForth program and print its validation result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0])
		},
	}
	return cmd
}

func runEval(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	result, err := reconforth.Eval(cmd.Context(), string(source))
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

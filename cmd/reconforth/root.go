// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ReconForth CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconforth",
		Short: "ReconForth - a stack-based document bundle validation DSL",
		Long: `ReconForth runs a small stack-based language for validating
bundles of documents: asserting required document types, inspecting
content and structure, and emitting structured validation results.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}

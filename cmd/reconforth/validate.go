// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reconforth/reconforth/internal/schema"
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/pkg/reconforth"
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <bundle.json> <pack.rf>",
		Short: "Decode a bundle and run a pack-building program against it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, bundlePath, packPath string) error {
	bundle, err := decodeBundleFile(bundlePath)
	if err != nil {
		return fmt.Errorf("decoding bundle: %w", err)
	}

	program, err := os.ReadFile(packPath)
	if err != nil {
		return fmt.Errorf("reading pack program: %w", err)
	}

	result, err := reconforth.Validate(cmd.Context(), bundle, string(program))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// bundleFile is the on-disk JSON shape: a bare array of Document JSON
// objects, each validated against the Document schema before being
// assembled into a Bundle.
type bundleFile []json.RawMessage

func decodeBundleFile(path string) (types.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Bundle{}, err
	}

	var raw bundleFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.Bundle{}, fmt.Errorf("bundle file is not a JSON array of documents: %w", err)
	}

	bundle := types.NewBundle()
	for i, docData := range raw {
		if err := schema.Validate(docData); err != nil {
			return types.Bundle{}, fmt.Errorf("document %d failed schema validation: %w", i, err)
		}
		var doc types.Document
		if err := json.Unmarshal(docData, &doc); err != nil {
			return types.Bundle{}, fmt.Errorf("document %d: %w", i, err)
		}
		bundle = bundle.Add(doc)
	}
	return bundle, nil
}

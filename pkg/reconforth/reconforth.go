// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package reconforth is the host-facing surface for the DSL core: the
// entry points a program embedding ReconForth calls, backed by the VM,
// built-in word library, format-detection/parsing subsystem, and
// document/bundle data model in internal/.
package reconforth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/reconforth/reconforth/internal/builtins"
	"github.com/reconforth/reconforth/internal/formats"
	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

var tracer = otel.Tracer("reconforth")

// Eval runs program on a fresh VM with no bundle loaded and returns the
// resulting validation state.
func Eval(ctx context.Context, program string) (*types.ValidationResult, error) {
	return run(ctx, "eval", program, nil)
}

// EvalBundle runs program against bundle: the VM's current-bundle slot is
// set and a clone is pushed before evaluation begins.
func EvalBundle(ctx context.Context, program string, bundle types.Bundle) (*types.ValidationResult, error) {
	return run(ctx, "eval_bundle", program, &bundle)
}

// Validate is EvalBundle under a name that reflects its expected use:
// packSpecProgram is expected to build a pack and end by shipping it
// against the loaded bundle.
func Validate(ctx context.Context, bundle types.Bundle, packSpecProgram string) (*types.ValidationResult, error) {
	return run(ctx, "validate", packSpecProgram, &bundle)
}

func run(ctx context.Context, op, program string, bundle *types.Bundle) (*types.ValidationResult, error) {
	ctx, span := tracer.Start(ctx, "reconforth."+op,
		trace.WithAttributes(attribute.Int("program.length", len(program))))
	defer span.End()

	start := time.Now()
	slog.InfoContext(ctx, op+".start")

	v := vm.New()
	v.SetContext(ctx)
	builtins.Register(v)
	if bundle != nil {
		v.LoadBundle(*bundle)
	}

	err := v.Eval(program)
	result := v.Validation()
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.InfoContext(ctx, op+".done", "success", false, "duration_ms", duration.Milliseconds(), "error", err.Error())
		return nil, err
	}

	slog.InfoContext(ctx, op+".done",
		"success", result.Success,
		"duration_ms", duration.Milliseconds(),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"suggestions", len(result.Suggestions),
	)
	return &result, nil
}

// CreateDocument builds a Document from content, stamping its SHA-256 hash
// and the host clock's current time onto both CreatedAt and
// Metadata.LastModified; CanonicalSource is "Inferred" since the host
// supplied no provenance.
func CreateDocument(content, path, docType string) types.Document {
	now := time.Now().UnixMilli()
	return types.Document{
		Hash:    builtins.Sha256Hex(content),
		Content: content,
		Metadata: types.DocumentMetadata{
			Path:            path,
			DocumentType:    docType,
			LastModified:    now,
			CanonicalSource: "Inferred",
		},
		CreatedAt: now,
	}
}

// CreateBundle returns an empty Bundle.
func CreateBundle() types.Bundle {
	return types.NewBundle()
}

// BundleAddDocument returns bundle with doc appended.
func BundleAddDocument(bundle types.Bundle, doc types.Document) types.Bundle {
	return bundle.Add(doc)
}

// HashContent returns the lowercase hex SHA-256 of text.
func HashContent(text string) string {
	return builtins.Sha256Hex(text)
}

// NormalizeContent trims leading/trailing whitespace, converts CRLF to LF,
// right-trims each line, and collapses runs of three or more consecutive
// newlines down to two. One pass is idempotent.
func NormalizeContent(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text = strings.Join(lines, "\n")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}

// DetectFormat applies the format-sniffing heuristics to content and
// returns the winning format's short name (e.g. "md", "org", "txt").
func DetectFormat(content string) string {
	return formats.Detect(content)
}

// ParseStructure detects content's format and parses it into the uniform
// DocumentStructure shape (headings, links, code blocks, elements).
func ParseStructure(content string) (types.DocumentStructure, error) {
	return formats.ParseContent(content)
}

// BatchHash hashes each text independently, preserving order.
func BatchHash(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = builtins.Sha256Hex(t)
	}
	return out
}

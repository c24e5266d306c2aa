// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package types defines the value and data model shared by the lexer, VM,
// built-in word library, and format parsers.
package types

import (
	"github.com/samber/oops"
)

// Error codes for the six execution-error kinds an evaluation can raise.
// A host branches on these via oops.AsOops(err).Code() rather than matching
// message strings.
const (
	CodeStackUnderflow = "ERR_STACK_UNDERFLOW"
	CodeTypeError      = "ERR_TYPE"
	CodeUndefinedWord  = "ERR_UNDEFINED_WORD"
	CodeParseError     = "ERR_PARSE"
	CodeValidationErr  = "ERR_VALIDATION"
	CodeRuntimeError   = "ERR_RUNTIME"
	CodeDecodingError  = "ERR_DECODING"
)

// ErrStackUnderflow reports an attempt to pop from an empty data stack.
func ErrStackUnderflow(context string) error {
	return oops.Code(CodeStackUnderflow).
		With("context", context).
		Errorf("stack underflow: %s", context)
}

// ErrTypeMismatch reports a pop helper that received a value of the wrong kind.
func ErrTypeMismatch(expected, got string) error {
	return oops.Code(CodeTypeError).
		With("expected", expected).
		With("got", got).
		Errorf("type error: expected %s, got %s", expected, got)
}

// ErrUndefinedWord reports a lookup miss in the dictionary.
func ErrUndefinedWord(name string) error {
	return oops.Code(CodeUndefinedWord).
		With("word", name).
		Errorf("undefined word: %s", name)
}

// ErrParse reports a lexer or VM structural parse failure.
func ErrParse(msg string) error {
	return oops.Code(CodeParseError).Errorf("parse error: %s", msg)
}

// ErrValidation reports a validation-stage failure that aborts execution
// (distinct from error!/warn!/suggest! messages, which do not abort).
func ErrValidation(msg string) error {
	return oops.Code(CodeValidationErr).Errorf("validation error: %s", msg)
}

// ErrRuntime reports a runtime failure such as division by zero or an
// unsupported document format.
func ErrRuntime(msg string) error {
	return oops.Code(CodeRuntimeError).Errorf("runtime error: %s", msg)
}

// ErrRuntimef is ErrRuntime with formatting.
func ErrRuntimef(format string, args ...any) error {
	return oops.Code(CodeRuntimeError).Errorf("runtime error: "+format, args...)
}

// ErrDecoding reports a failure decoding a host-supplied Document/Bundle
// against the JSON schema (see internal/schema).
func ErrDecoding(msg string) error {
	return oops.Code(CodeDecodingError).Errorf("decoding error: %s", msg)
}

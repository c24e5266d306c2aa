// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package vm implements the ReconForth stack machine: the data stack,
// word dictionary, and execution loop that drives Int/Float/Str/Quotation/
// DefStart/Word tokens.
package vm

import (
	"context"
	"log/slog"

	"github.com/reconforth/reconforth/internal/lexer"
	"github.com/reconforth/reconforth/internal/types"
)

// VM is a single ReconForth stack machine instance. It owns its stack,
// dictionary, current bundle, and validation accumulator exclusively;
// concurrent use of one VM from multiple goroutines is unsupported.
type VM struct {
	stack         []types.Value
	dictionary    Dictionary
	currentBundle *types.Bundle
	validation    types.ValidationResult
	debug         bool
	logger        *slog.Logger
	ctx           context.Context
}

// New returns a VM with the standard dictionary empty; callers wire in the
// built-in word library via RegisterNative/DefineWord (see internal/builtins).
func New() *VM {
	return &VM{
		dictionary: make(Dictionary),
		validation: types.NewValidationResult(),
		logger:     slog.Default(),
		ctx:        context.Background(),
	}
}

// SetDebug toggles per-word trace logging.
func (v *VM) SetDebug(debug bool) { v.debug = debug }

// SetLogger overrides the logger used for debug tracing.
func (v *VM) SetLogger(logger *slog.Logger) {
	if logger != nil {
		v.logger = logger
	}
}

// SetContext overrides the context carried for trace-aware logging. The VM
// performs no cancellation checks against it; it exists purely so debug
// traces can be correlated to a caller's span.
func (v *VM) SetContext(ctx context.Context) {
	if ctx != nil {
		v.ctx = ctx
	}
}

// LoadBundle sets the VM's current bundle and pushes a clone onto the stack.
func (v *VM) LoadBundle(bundle types.Bundle) {
	b := bundle.Clone()
	v.currentBundle = &b
	v.Push(types.BundleValue(bundle))
}

// Bundle returns the VM's current bundle, if one was loaded.
func (v *VM) Bundle() (types.Bundle, bool) {
	if v.currentBundle == nil {
		return types.Bundle{}, false
	}
	return *v.currentBundle, true
}

// Push places a value on top of the data stack.
func (v *VM) Push(value types.Value) {
	if v.debug {
		v.logger.DebugContext(v.ctx, "push", slog.String("type", value.TypeName()))
	}
	v.stack = append(v.stack, value.Clone())
}

// Pop removes and returns the top of the data stack.
func (v *VM) Pop() (types.Value, error) {
	if len(v.stack) == 0 {
		return types.Value{}, types.ErrStackUnderflow("stack is empty")
	}
	last := len(v.stack) - 1
	val := v.stack[last]
	v.stack = v.stack[:last]
	return val, nil
}

// Peek returns the top of the data stack without removing it.
func (v *VM) Peek() (types.Value, bool) {
	if len(v.stack) == 0 {
		return types.Value{}, false
	}
	return v.stack[len(v.stack)-1], true
}

// Depth returns the number of values on the data stack.
func (v *VM) Depth() int { return len(v.stack) }

// Stack returns a read-only snapshot of the data stack, bottom to top; used
// by `.s` and host debugging surfaces.
func (v *VM) Stack() []types.Value {
	out := make([]types.Value, len(v.stack))
	copy(out, v.stack)
	return out
}

// PopInt accepts Int, truncates Float, and coerces Bool (true=1, false=0).
func (v *VM) PopInt() (int64, error) {
	val, err := v.Pop()
	if err != nil {
		return 0, err
	}
	switch val.Kind {
	case types.KindInt:
		return val.Int, nil
	case types.KindFloat:
		return int64(val.Float), nil
	case types.KindBool:
		if val.Bool {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, types.ErrTypeMismatch("int", val.TypeName())
	}
}

// PopFloat accepts Float or Int (widened).
func (v *VM) PopFloat() (float64, error) {
	val, err := v.Pop()
	if err != nil {
		return 0, err
	}
	switch val.Kind {
	case types.KindFloat:
		return val.Float, nil
	case types.KindInt:
		return float64(val.Int), nil
	default:
		return 0, types.ErrTypeMismatch("float", val.TypeName())
	}
}

// PopBool accepts Bool, Int (nonzero = true), and Nil (false).
func (v *VM) PopBool() (bool, error) {
	val, err := v.Pop()
	if err != nil {
		return false, err
	}
	switch val.Kind {
	case types.KindBool:
		return val.Bool, nil
	case types.KindInt:
		return val.Int != 0, nil
	case types.KindNil:
		return false, nil
	default:
		return false, types.ErrTypeMismatch("bool", val.TypeName())
	}
}

// PopStr accepts Str or Hash (returning the hex text).
func (v *VM) PopStr() (string, error) {
	val, err := v.Pop()
	if err != nil {
		return "", err
	}
	switch val.Kind {
	case types.KindStr, types.KindHash:
		return val.Str, nil
	default:
		return "", types.ErrTypeMismatch("string", val.TypeName())
	}
}

// PopDoc requires a Doc value.
func (v *VM) PopDoc() (types.Document, error) {
	val, err := v.Pop()
	if err != nil {
		return types.Document{}, err
	}
	return val.AsDoc()
}

// PopBundle requires a Bundle value.
func (v *VM) PopBundle() (types.Bundle, error) {
	val, err := v.Pop()
	if err != nil {
		return types.Bundle{}, err
	}
	return val.AsBundle()
}

// PopPack requires a Pack value.
func (v *VM) PopPack() (types.PackSpec, error) {
	val, err := v.Pop()
	if err != nil {
		return types.PackSpec{}, err
	}
	return val.AsPack()
}

// PopQuotation requires a Quotation value.
func (v *VM) PopQuotation() ([]types.Token, error) {
	val, err := v.Pop()
	if err != nil {
		return nil, err
	}
	return val.AsQuotation()
}

// PopList requires a List value.
func (v *VM) PopList() ([]types.Value, error) {
	val, err := v.Pop()
	if err != nil {
		return nil, err
	}
	return val.AsList()
}

// RegisterNative installs a host-implemented word.
func (v *VM) RegisterNative(name string, fn NativeFunc) {
	v.dictionary[name] = WordDef{Native: fn}
}

// DefineWord installs a user-defined word body, as produced by a DefStart
// token sequence.
func (v *VM) DefineWord(name string, body []types.Token) {
	v.dictionary[name] = WordDef{Body: body, IsUser: true}
}

// ReportError records an error! message and latches validation failure.
func (v *VM) ReportError(message string) {
	v.validation.AddError(types.NewMessage(message))
}

// ReportWarning records a warn! message.
func (v *VM) ReportWarning(message string) {
	v.validation.AddWarning(types.NewMessage(message))
}

// ReportSuggestion records a suggest! message.
func (v *VM) ReportSuggestion(message string) {
	v.validation.AddSuggestion(types.NewMessage(message))
}

// Validation returns the current validation accumulator.
func (v *VM) Validation() types.ValidationResult { return v.validation.Clone() }

// ResetValidation discards accumulated messages and restores success=true.
func (v *VM) ResetValidation() { v.validation = types.NewValidationResult() }

// Eval lexes source and executes the resulting token stream.
func (v *VM) Eval(source string) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	return v.Execute(tokens)
}

// CallQuotation executes a token slice as a quotation body.
func (v *VM) CallQuotation(body []types.Token) error {
	return v.Execute(body)
}

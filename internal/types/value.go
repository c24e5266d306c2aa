// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package types

import "fmt"

// ValueKind discriminates the Value sum type.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindStr
	KindHash
	KindDoc
	KindBundle
	KindPack
	KindList
	KindQuotation
	KindValidationResult
)

// Value is the tagged union every stack slot holds. Exactly the field
// matching Kind is meaningful; the rest are zero values.
type Value struct {
	Kind      ValueKind
	Int       int64
	Float     float64
	Bool      bool
	Str       string
	Doc       Document
	Bundle    Bundle
	Pack      PackSpec
	List      []Value
	Quotation []Token
	Result    ValidationResult
}

func NilValue() Value                   { return Value{Kind: KindNil} }
func IntValue(i int64) Value             { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value         { return Value{Kind: KindFloat, Float: f} }
func BoolValue(b bool) Value             { return Value{Kind: KindBool, Bool: b} }
func StrValue(s string) Value            { return Value{Kind: KindStr, Str: s} }
func HashValue(s string) Value           { return Value{Kind: KindHash, Str: s} }
func DocValue(d Document) Value          { return Value{Kind: KindDoc, Doc: d.Clone()} }
func BundleValue(b Bundle) Value         { return Value{Kind: KindBundle, Bundle: b.Clone()} }
func PackValue(p PackSpec) Value         { return Value{Kind: KindPack, Pack: p.Clone()} }
func ListValue(items []Value) Value      { return Value{Kind: KindList, List: append([]Value{}, items...)} }
func QuotationValue(body []Token) Value {
	q := make([]Token, len(body))
	copy(q, body)
	return Value{Kind: KindQuotation, Quotation: q}
}
func ValidationResultValue(r ValidationResult) Value {
	return Value{Kind: KindValidationResult, Result: r.Clone()}
}

// TypeName returns the DSL-visible type name, as used in type-error messages
// and debug tracing.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStr:
		return "string"
	case KindHash:
		return "hash"
	case KindDoc:
		return "doc"
	case KindBundle:
		return "bundle"
	case KindPack:
		return "pack"
	case KindList:
		return "list"
	case KindQuotation:
		return "quotation"
	case KindValidationResult:
		return "validation-result"
	default:
		return "unknown"
	}
}

// Truthy implements the DSL's truthiness rule: false, nil, and Int 0 are
// falsy; everything else, including "", is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	default:
		return true
	}
}

// Clone returns a deep copy appropriate to push onto the stack.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindDoc:
		return DocValue(v.Doc)
	case KindBundle:
		return BundleValue(v.Bundle)
	case KindPack:
		return PackValue(v.Pack)
	case KindList:
		items := make([]Value, len(v.List))
		for i, item := range v.List {
			items[i] = item.Clone()
		}
		return Value{Kind: KindList, List: items}
	case KindQuotation:
		return QuotationValue(v.Quotation)
	case KindValidationResult:
		return ValidationResultValue(v.Result)
	default:
		return v
	}
}

func (v Value) AsBool() (bool, error) {
	if v.Kind != KindBool {
		return false, ErrTypeMismatch("bool", v.TypeName())
	}
	return v.Bool, nil
}

func (v Value) AsInt() (int64, error) {
	if v.Kind != KindInt {
		return 0, ErrTypeMismatch("int", v.TypeName())
	}
	return v.Int, nil
}

func (v Value) AsFloat() (float64, error) {
	if v.Kind != KindFloat {
		return 0, ErrTypeMismatch("float", v.TypeName())
	}
	return v.Float, nil
}

func (v Value) AsStr() (string, error) {
	if v.Kind != KindStr {
		return "", ErrTypeMismatch("string", v.TypeName())
	}
	return v.Str, nil
}

func (v Value) AsHash() (string, error) {
	if v.Kind != KindHash {
		return "", ErrTypeMismatch("hash", v.TypeName())
	}
	return v.Str, nil
}

func (v Value) AsDoc() (Document, error) {
	if v.Kind != KindDoc {
		return Document{}, ErrTypeMismatch("doc", v.TypeName())
	}
	return v.Doc, nil
}

func (v Value) AsBundle() (Bundle, error) {
	if v.Kind != KindBundle {
		return Bundle{}, ErrTypeMismatch("bundle", v.TypeName())
	}
	return v.Bundle, nil
}

func (v Value) AsPack() (PackSpec, error) {
	if v.Kind != KindPack {
		return PackSpec{}, ErrTypeMismatch("pack", v.TypeName())
	}
	return v.Pack, nil
}

func (v Value) AsList() ([]Value, error) {
	if v.Kind != KindList {
		return nil, ErrTypeMismatch("list", v.TypeName())
	}
	return v.List, nil
}

func (v Value) AsQuotation() ([]Token, error) {
	if v.Kind != KindQuotation {
		return nil, ErrTypeMismatch("quotation", v.TypeName())
	}
	return v.Quotation, nil
}

func (v Value) AsValidationResult() (ValidationResult, error) {
	if v.Kind != KindValidationResult {
		return ValidationResult{}, ErrTypeMismatch("validation-result", v.TypeName())
	}
	return v.Result, nil
}

// String renders a value for `.s` / debug tracing.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindStr:
		return v.Str
	case KindHash:
		return v.Str
	case KindDoc:
		return fmt.Sprintf("<doc %s>", v.Doc.DocType())
	case KindBundle:
		return fmt.Sprintf("<bundle n=%d>", v.Bundle.Count())
	case KindPack:
		return fmt.Sprintf("<pack %s>", v.Pack.Name)
	case KindList:
		return fmt.Sprintf("<list n=%d>", len(v.List))
	case KindQuotation:
		return fmt.Sprintf("<quotation n=%d>", len(v.Quotation))
	case KindValidationResult:
		return fmt.Sprintf("<validation-result success=%t>", v.Result.Success)
	default:
		return "<unknown>"
	}
}

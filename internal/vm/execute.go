// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package vm

import (
	"log/slog"

	"github.com/reconforth/reconforth/internal/types"
)

// Execute runs a token slice against the VM's stack and dictionary. It is
// re-entered for quotation bodies and user-word bodies; there is no
// separate return-stack structure, nesting is modeled by Go's own call
// stack.
func (v *VM) Execute(tokens []types.Token) error {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Kind {
		case types.TokenInt:
			v.Push(types.IntValue(tok.Int))

		case types.TokenFloat:
			v.Push(types.FloatValue(tok.Float))

		case types.TokenStr:
			v.Push(types.StrValue(tok.Str))

		case types.TokenQuoteStart:
			body, next, err := scanQuotation(tokens, i+1)
			if err != nil {
				return err
			}
			v.Push(types.QuotationValue(body))
			i = next

		case types.TokenDefStart:
			next, err := v.installDefinition(tokens, i+1)
			if err != nil {
				return err
			}
			i = next
			continue

		case types.TokenWord:
			if err := v.executeWord(tok.Word); err != nil {
				return err
			}

		case types.TokenComment,
			types.TokenStackEffectStart,
			types.TokenStackEffectEnd,
			types.TokenQuoteEnd,
			types.TokenDefEnd:
			// Consumed by their corresponding start forms, or inert.

		default:
			// unreachable for a well-formed token stream
		}

		i++
	}
	return nil
}

// scanQuotation collects tokens from start up to (not including) the
// matching QuoteEnd, honoring nested brackets. It returns the body and the
// index of the QuoteEnd token itself (the caller's loop increments past it).
func scanQuotation(tokens []types.Token, start int) ([]types.Token, int, error) {
	depth := 1
	i := start
	for i < len(tokens) && depth > 0 {
		switch tokens[i].Kind {
		case types.TokenQuoteStart:
			depth++
		case types.TokenQuoteEnd:
			depth--
		}
		if depth > 0 {
			i++
		}
	}
	if depth != 0 {
		return nil, 0, types.ErrParse("unmatched quotation bracket")
	}
	body := make([]types.Token, i-start)
	copy(body, tokens[start:i])
	return body, i, nil
}

// installDefinition reads `name [ ( stack-effect ) ] body ;` starting at the
// token after DefStart, installs it into the dictionary, and returns the
// index of the DefEnd token.
func (v *VM) installDefinition(tokens []types.Token, i int) (int, error) {
	if i >= len(tokens) || tokens[i].Kind != types.TokenWord {
		return 0, types.ErrParse("expected word name after :")
	}
	name := tokens[i].Word
	i++

	if i < len(tokens) && tokens[i].Kind == types.TokenStackEffectStart {
		for i < len(tokens) && tokens[i].Kind != types.TokenStackEffectEnd {
			i++
		}
		i++ // skip StackEffectEnd
	}

	start := i
	for i < len(tokens) && tokens[i].Kind != types.TokenDefEnd {
		i++
	}
	if i >= len(tokens) || tokens[i].Kind != types.TokenDefEnd {
		return 0, types.ErrParse("unterminated word definition")
	}

	body := make([]types.Token, i-start)
	copy(body, tokens[start:i])
	v.DefineWord(name, body)
	return i, nil
}

func (v *VM) executeWord(name string) error {
	if v.debug {
		v.logger.DebugContext(v.ctx, "exec", slog.String("word", name), slog.Int("depth", v.Depth()))
	}

	def, ok := v.dictionary[name]
	if !ok {
		return types.ErrUndefinedWord(name)
	}

	if def.IsUser {
		return v.Execute(def.Body)
	}
	return def.Native(v)
}

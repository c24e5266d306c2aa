// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package builtins

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/reconforth/reconforth/internal/types"
	"github.com/reconforth/reconforth/internal/vm"
)

func registerHashing(v *vm.VM) {
	v.RegisterNative("hash-content", wordHashContent)
}

// Sha256Hex returns the lowercase hex SHA-256 digest of content. Shared
// with pkg/reconforth's CreateDocument so doc.hash and hash-content never
// disagree.
func Sha256Hex(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// hash-content ( str -- hash )
func wordHashContent(v *vm.VM) error {
	s, err := v.PopStr()
	if err != nil {
		return err
	}
	v.Push(types.HashValue(Sha256Hex(s)))
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package security holds the broader hashing/crypto suite referenced
// alongside hash-content: some primitives are wired to real
// implementations, others remain named stubs where no suitable library
// exists anywhere in the example corpus. None of this package is
// registered as a DSL word — hash-content (internal/builtins) uses
// Sha256Hex directly and never reaches into here.
package security

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

var errShortCiphertext = errors.New("security: ciphertext shorter than nonce")

// Shake128Sum returns an outLen-byte SHAKE128 digest of data.
func Shake128Sum(data []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum128(out, data)
	return out
}

// Shake256Sum returns an outLen-byte SHAKE256 digest of data.
func Shake256Sum(data []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum256(out, data)
	return out
}

// Argon2idParams controls the cost of Argon2idDerive.
type Argon2idParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

// DefaultArgon2idParams are reasonable interactive-login-class defaults.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{Time: 1, MemoryKiB: 64 * 1024, Threads: 4, KeyLen: 32}
}

// Argon2idDerive derives a key from password and salt using Argon2id.
func Argon2idDerive(password, salt []byte, params Argon2idParams) []byte {
	return argon2.IDKey(password, salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen)
}

// HKDFExpand derives outLen bytes from secret using SHA3-256-based HKDF
// with the given salt and info.
func HKDFExpand(secret, salt, info []byte, outLen int) ([]byte, error) {
	reader := hkdf.New(sha3.New256, secret, salt, info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, err
	}
	return out, nil
}

// XChaCha20Poly1305Encrypt seals plaintext with a random nonce, which is
// prepended to the returned ciphertext.
func XChaCha20Poly1305Encrypt(key, plaintext, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// XChaCha20Poly1305Decrypt opens a ciphertext produced by
// XChaCha20Poly1305Encrypt.
func XChaCha20Poly1305Decrypt(key, sealed, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonceSize := aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, errShortCiphertext
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	return aead.Open(nil, nonce, ciphertext, additionalData)
}

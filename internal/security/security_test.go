// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShake128SumDeterministic(t *testing.T) {
	a := Shake128Sum([]byte("hello"), 32)
	b := Shake128Sum([]byte("hello"), 32)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestShake256SumDiffersFrom128(t *testing.T) {
	a := Shake128Sum([]byte("hello"), 32)
	b := Shake256Sum([]byte("hello"), 32)
	assert.NotEqual(t, a, b)
}

func TestArgon2idDeriveDeterministic(t *testing.T) {
	params := DefaultArgon2idParams()
	a := Argon2idDerive([]byte("password"), []byte("some-salt-value-"), params)
	b := Argon2idDerive([]byte("password"), []byte("some-salt-value-"), params)
	assert.Equal(t, a, b)
	assert.Len(t, a, int(params.KeyLen))
}

func TestHKDFExpandDeterministic(t *testing.T) {
	a, err := HKDFExpand([]byte("secret"), []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	b, err := HKDFExpand([]byte("secret"), []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestXChaCha20Poly1305RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	sealed, err := XChaCha20Poly1305Encrypt(key, []byte("top secret"), []byte("aad"))
	require.NoError(t, err)

	opened, err := XChaCha20Poly1305Decrypt(key, sealed, []byte("aad"))
	require.NoError(t, err)
	assert.Equal(t, "top secret", string(opened))
}

func TestXChaCha20Poly1305WrongAADFails(t *testing.T) {
	key := make([]byte, 32)
	sealed, err := XChaCha20Poly1305Encrypt(key, []byte("msg"), []byte("aad"))
	require.NoError(t, err)

	_, err = XChaCha20Poly1305Decrypt(key, sealed, []byte("wrong"))
	assert.Error(t, err)
}

func TestStubPrimitivesReturnErrStub(t *testing.T) {
	_, err := Blake3Sum([]byte("x"))
	assert.ErrorIs(t, err, ErrStub)

	_, err = DilithiumSign([]byte("msg"), []byte("key"))
	assert.ErrorIs(t, err, ErrStub)

	_, _, err = KyberEncapsulate([]byte("pub"))
	assert.ErrorIs(t, err, ErrStub)

	_, err = DRBGGenerate([]byte("seed"), 16)
	assert.ErrorIs(t, err, ErrStub)
}

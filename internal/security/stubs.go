// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

package security

import "errors"

// ErrStub is returned by every placeholder primitive in this file. Each one
// names the algorithm it stands in for and the library its real
// implementation would need, none of which exist anywhere in the example
// corpus this module was grounded on.
var ErrStub = errors.New("security: primitive not implemented, stub only")

const stubPrefix = "stub:"

// Blake3Sum is a named placeholder for a BLAKE3 digest. golang.org/x/crypto
// stops at BLAKE2b/s, a distinct primitive, so substituting it would
// misrepresent the algorithm; no BLAKE3 binding exists in the corpus.
func Blake3Sum(data []byte) ([]byte, error) {
	return []byte(stubPrefix + "blake3"), ErrStub
}

// DilithiumSign is a named placeholder for ML-DSA (Dilithium) signing. No
// post-quantum signature library is present in the corpus.
func DilithiumSign(message, privateKey []byte) ([]byte, error) {
	return []byte(stubPrefix + "dilithium"), ErrStub
}

// KyberEncapsulate is a named placeholder for ML-KEM (Kyber) key
// encapsulation. No post-quantum KEM library is present in the corpus.
func KyberEncapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	return []byte(stubPrefix + "kyber"), nil, ErrStub
}

// DRBGGenerate is a named placeholder for a NIST SP 800-90A deterministic
// random bit generator. crypto/rand covers non-deterministic randomness;
// no deterministic-RNG implementation is present in the corpus.
func DRBGGenerate(seed []byte, outLen int) ([]byte, error) {
	return []byte(stubPrefix + "drbg"), ErrStub
}

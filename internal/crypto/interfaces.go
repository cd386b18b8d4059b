// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeCipher encrypts a serialized sync request for the authority.
//
// contextID selects the recipient key: it is the id of the first packet of
// the batch, from which the center/machine reference is derived (see [RefID]).
type EnvelopeCipher interface {
	Encrypt(contextID string, plaintext []byte) ([]byte, error)
}

// EnvelopeOpener reverses [EnvelopeCipher] on the authority side.
type EnvelopeOpener interface {
	Decrypt(ciphertext []byte) ([]byte, error)
}

// KeyProvider resolves recipient public keys by center/machine reference.
type KeyProvider interface {
	// KeyFor returns the public key for refID, falling back to the default
	// recipient key. Returns [ErrNoRecipientKey] when neither exists.
	KeyFor(refID string) (*[KeySize]byte, error)
	// Ready reports whether at least one key is available.
	Ready() bool
}

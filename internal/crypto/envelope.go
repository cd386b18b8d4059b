// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// sealedBoxCipher seals envelopes anonymously (ephemeral sender key) for the
// recipient selected by the packet reference.
type sealedBoxCipher struct {
	keys   KeyProvider
	random io.Reader
}

// NewEnvelopeCipher returns an [EnvelopeCipher] backed by nacl sealed boxes.
func NewEnvelopeCipher(keys KeyProvider) EnvelopeCipher {
	return &sealedBoxCipher{keys: keys, random: rand.Reader}
}

func (c *sealedBoxCipher) Encrypt(contextID string, plaintext []byte) ([]byte, error) {
	recipient, err := c.keys.KeyFor(RefID(contextID))
	if err != nil {
		return nil, err
	}

	sealed, err := box.SealAnonymous(nil, plaintext, recipient, c.random)
	if err != nil {
		return nil, fmt.Errorf("seal envelope: %w", err)
	}

	return sealed, nil
}

type sealedBoxOpener struct {
	publicKey  *[KeySize]byte
	privateKey *[KeySize]byte
}

// NewEnvelopeOpener returns an [EnvelopeOpener] for the base64 encoded
// private key. The public half is derived from it.
func NewEnvelopeOpener(privateKey string) (EnvelopeOpener, error) {
	priv, err := DecodeKey(privateKey)
	if err != nil {
		return nil, err
	}

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	var publicKey [KeySize]byte
	copy(publicKey[:], pub)

	return &sealedBoxOpener{publicKey: &publicKey, privateKey: priv}, nil
}

func (o *sealedBoxOpener) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, ok := box.OpenAnonymous(nil, ciphertext, o.publicKey, o.privateKey)
	if !ok {
		return nil, ErrOpeningEnvelope
	}
	return plaintext, nil
}

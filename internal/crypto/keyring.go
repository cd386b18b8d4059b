// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/curve25519"
)

// KeySize is the length of curve25519 keys in bytes.
const KeySize = 32

const (
	centerIDLength  = 5
	machineIDLength = 5
)

// RefID derives the center/machine reference ("<center>_<machine>") from a
// packet id, whose first ten characters are the center id followed by the
// machine id. Shorter ids yield an empty reference.
func RefID(packetID string) string {
	if len(packetID) < centerIDLength+machineIDLength {
		return ""
	}
	return packetID[:centerIDLength] + "_" + packetID[centerIDLength:centerIDLength+machineIDLength]
}

// Keyring maps center/machine references to recipient public keys.
type Keyring struct {
	keys     map[string]*[KeySize]byte
	fallback *[KeySize]byte
}

// NewKeyring builds a keyring from base64 encoded keys. defaultKey may be
// empty.
func NewKeyring(keys map[string]string, defaultKey string) (*Keyring, error) {
	k := &Keyring{keys: make(map[string]*[KeySize]byte, len(keys))}

	for refID, encoded := range keys {
		key, err := DecodeKey(encoded)
		if err != nil {
			return nil, fmt.Errorf("key for %q: %w", refID, err)
		}
		k.keys[refID] = key
	}

	if defaultKey != "" {
		key, err := DecodeKey(defaultKey)
		if err != nil {
			return nil, fmt.Errorf("default key: %w", err)
		}
		k.fallback = key
	}

	return k, nil
}

// LoadKeyring reads a JSON object of reference to base64 key from path. An
// empty path yields a keyring holding only defaultKey.
func LoadKeyring(path, defaultKey string) (*Keyring, error) {
	keys := map[string]string{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingKeyring, err)
		}
		if err = json.Unmarshal(data, &keys); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingKeyring, err)
		}
	}

	return NewKeyring(keys, defaultKey)
}

// KeyFor implements [KeyProvider].
func (k *Keyring) KeyFor(refID string) (*[KeySize]byte, error) {
	if key, ok := k.keys[refID]; ok {
		return key, nil
	}
	if k.fallback != nil {
		return k.fallback, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoRecipientKey, refID)
}

// Ready implements [KeyProvider].
func (k *Keyring) Ready() bool {
	return k != nil && (k.fallback != nil || len(k.keys) > 0)
}

// DecodeKey parses a base64 (std encoding) curve25519 key.
func DecodeKey(encoded string) (*[KeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(raw))
	}

	var key [KeySize]byte
	copy(key[:], raw)
	return &key, nil
}

// GenerateKeyPair returns a fresh base64 encoded curve25519 key pair.
func GenerateKeyPair() (publicKey, privateKey string, err error) {
	var priv [KeySize]byte
	if _, err = rand.Read(priv[:]); err != nil {
		return "", "", err
	}

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(pub), base64.StdEncoding.EncodeToString(priv[:]), nil
}

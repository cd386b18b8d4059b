// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrNoRecipientKey is returned when no key is configured for a
	// reference and no default key exists.
	ErrNoRecipientKey = errors.New("no recipient key")
	// ErrInvalidKey is returned for a key that is not base64 of KeySize bytes.
	ErrInvalidKey = errors.New("invalid key")
	// ErrReadingKeyring is returned when the keyring file cannot be loaded.
	ErrReadingKeyring = errors.New("error reading keyring")
	// ErrOpeningEnvelope is returned when a sealed envelope fails
	// authentication or was sealed for another key.
	ErrOpeningEnvelope = errors.New("error opening envelope")
)

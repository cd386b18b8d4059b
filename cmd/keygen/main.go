// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command keygen prints a fresh curve25519 key pair for the envelope
// encryption: the public key goes to the sync agent's keyring, the private
// key to the authority.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-packet-sync/internal/crypto"
)

func main() {
	pub, priv, err := crypto.GenerateKeyPair()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate key pair: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("CRYPTO_RECIPIENT_PUBLIC_KEY=%s\n", pub)
	fmt.Printf("CRYPTO_PRIVATE_KEY=%s\n", priv)
}

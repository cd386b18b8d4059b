// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is a request-signing token exchanged between the sync agent and the
// authority.
type Token struct {
	*jwt.Token

	// SignedString is the compact serialized token.
	SignedString string

	// MachineID is the "sub" claim of a verified token.
	MachineID string
}

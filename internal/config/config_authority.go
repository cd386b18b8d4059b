// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// AuthorityConfig is the configuration view of the reference authority.
type AuthorityConfig struct {
	// App carries the token verification settings.
	App App
	// Server contains the listen address and request timeout.
	Server Server
	// SyncPath is the route the sync endpoint is mounted on.
	SyncPath string
	// PrivateKey is the base64 curve25519 key used to open envelopes.
	PrivateKey string
}

// GetAuthorityConfig builds and validates the authority config view.
func GetAuthorityConfig() (*AuthorityConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	authorityCfg := newAuthorityConfig(cfg)
	return authorityCfg, authorityCfg.validate()
}

func newAuthorityConfig(cfg *StructuredConfig) *AuthorityConfig {
	return &AuthorityConfig{
		App: App{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Server:     cfg.Server,
		SyncPath:   cfg.Adapter.SyncPath,
		PrivateKey: cfg.Crypto.PrivateKey,
	}
}

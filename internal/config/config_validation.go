// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the invariants shared by every config view: a supported
// storage driver and a sane sync policy.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Sync.BatchCount < 0 || cfg.Sync.RetryMaxAttempts < 0 || cfg.Sync.RetryBackoff < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// validate checks the sync agent view. Device identity is not required here:
// a device that is not yet onboarded still starts and its sync attempts are
// refused by the precondition check.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.SyncPath == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.BatchCount < 1 || cfg.Sync.RetryMaxAttempts < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Crypto.KeyringPath == "" && cfg.Crypto.RecipientPublicKey == "" {
		return ErrInvalidCryptoConfigs
	}

	return nil
}

func (cfg *AuthorityConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.SyncPath == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.PrivateKey == "" {
		return ErrInvalidCryptoConfigs
	}

	return nil
}

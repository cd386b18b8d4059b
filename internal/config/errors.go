// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing authority address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates a negative or zero batch/retry setting.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidCryptoConfigs indicates that no key material is configured.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidServerConfigs indicates invalid authority listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

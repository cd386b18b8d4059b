// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync agent and the reference authority. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file,
// and is then completed with [defaultConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds device identity and request-signing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the packet database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the outbound transport settings used to reach the
	// authority.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the batch and retry settings of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Crypto holds the envelope key material.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Server holds the listen settings of the reference authority.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds device identity and request-signing settings.
type App struct {
	// MachineID identifies this registration device.
	// Env: APP_MACHINE_ID
	MachineID string `env:"MACHINE_ID"`

	// CenterID identifies the registration center the device belongs to.
	// Env: APP_CENTER_ID
	CenterID string `env:"CENTER_ID"`

	// Language is the fallback language code for sync items whose
	// demographic blob carries none.
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// TokenSignKey is the HMAC key used to sign and verify request tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of request tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a request token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogFile is the path of the sync agent log file. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the packet database.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the packet database.
type DB struct {
	// DSN is the data source name, a file path for sqlite3 or a postgres URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the SQL dialect: "sqlite3" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the authority (scheme optional).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SyncPath is the path of the packet sync endpoint.
	// Env: ADAPTER_SYNC_PATH
	SyncPath string `env:"SYNC_PATH"`
}

// Sync holds the batch and retry settings of the sync engine.
type Sync struct {
	// BatchCount caps the number of packets in a full-mode batch.
	// Env: SYNC_BATCH_COUNT
	BatchCount int `env:"BATCH_COUNT"`

	// RetryMaxAttempts is the total number of tries for one sync attempt.
	// Env: SYNC_RETRY_MAX_ATTEMPTS
	RetryMaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`

	// RetryBackoff is the fixed delay between tries.
	// Env: SYNC_RETRY_BACKOFF
	RetryBackoff time.Duration `env:"RETRY_BACKOFF"`
}

// Crypto holds the envelope key material.
type Crypto struct {
	// KeyringPath points to a JSON file mapping recipient references
	// (center_machine) to base64 curve25519 public keys.
	// Env: CRYPTO_KEYRING_PATH
	KeyringPath string `env:"KEYRING_PATH"`

	// RecipientPublicKey is the base64 public key used when the keyring has
	// no entry for a reference.
	// Env: CRYPTO_RECIPIENT_PUBLIC_KEY
	RecipientPublicKey string `env:"RECIPIENT_PUBLIC_KEY"`

	// PrivateKey is the authority's base64 curve25519 private key.
	// Env: CRYPTO_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`
}

// Server holds the listen settings of the reference authority.
type Server struct {
	// HTTPAddress is the host:port the authority listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the scheduled full sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, completes and validates the
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source are filled from [defaultConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

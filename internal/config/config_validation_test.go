// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.MachineID = "10011"
	cfg.App.CenterID = "10002"
	cfg.App.TokenSignKey = "secret"
	cfg.Adapter.HTTPAddress = "http://localhost:8090"
	cfg.Crypto.RecipientPublicKey = "cHVi"
	cfg.Crypto.PrivateKey = "cHJpdg=="
	return cfg
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:   "valid without device identity",
			mutate: func(cfg *StructuredConfig) { cfg.App.MachineID, cfg.App.CenterID = "", "" },
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "file::memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing authority address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero batch",
			mutate:  func(cfg *StructuredConfig) { cfg.Sync.BatchCount = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "zero interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "no key material",
			mutate: func(cfg *StructuredConfig) {
				cfg.Crypto.RecipientPublicKey = ""
				cfg.Crypto.KeyringPath = ""
			},
			wantErr: ErrInvalidCryptoConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := newClientConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_DropsPrivateKey(t *testing.T) {
	clientCfg := newClientConfig(validStructuredConfig())
	assert.Empty(t, clientCfg.Crypto.PrivateKey)
	assert.Equal(t, "cHVi", clientCfg.Crypto.RecipientPublicKey)
}

func TestAuthorityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing sync path",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.SyncPath = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing private key",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.PrivateKey = "" },
			wantErr: ErrInvalidCryptoConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := newAuthorityConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSync_WithDefaults(t *testing.T) {
	got := Sync{BatchCount: 0, RetryMaxAttempts: -1, RetryBackoff: -time.Second}.WithDefaults()
	assert.Equal(t, Sync{
		BatchCount:       DefaultBatchCount,
		RetryMaxAttempts: DefaultRetryMaxAttempts,
		RetryBackoff:     DefaultRetryBackoff,
	}, got)

	kept := Sync{BatchCount: 4, RetryMaxAttempts: 1, RetryBackoff: 0}.WithDefaults()
	assert.Equal(t, Sync{BatchCount: 4, RetryMaxAttempts: 1}, kept)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8090},
			expected: "localhost:8090",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8090",
			expectedAddr: NetAddress{Host: "localhost", Port: 8090},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "sync agent flags",
			args: []string{
				"-u", "http://127.0.0.1:8090",
				"-d", "/var/lib/packets.db",
				"-driver", "sqlite3",
				"-machine-id", "10011",
				"-center-id", "10002",
				"-language", "ara",
				"-token-sign-key", "jwt_secret",
				"-token-duration", "2m",
				"-request-timeout", "45s",
				"-sync-path", "/sync",
				"-batch-count", "15",
				"-retry-attempts", "3",
				"-retry-backoff", "250ms",
				"-sync-interval", "10m",
				"-keyring", "/etc/keyring.json",
				"-recipient-key", "cHVi",
				"-log-file", "/tmp/sync.log",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://127.0.0.1:8090", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/sync", cfg.Adapter.SyncPath)
				assert.Equal(t, DB{DSN: "/var/lib/packets.db", Driver: DriverSQLite}, cfg.Storage.DB)
				assert.Equal(t, "10011", cfg.App.MachineID)
				assert.Equal(t, "10002", cfg.App.CenterID)
				assert.Equal(t, "ara", cfg.App.Language)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, 2*time.Minute, cfg.App.TokenDuration)
				assert.Equal(t, "/tmp/sync.log", cfg.App.LogFile)
				assert.Equal(t, Sync{BatchCount: 15, RetryMaxAttempts: 3, RetryBackoff: 250 * time.Millisecond}, cfg.Sync)
				assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, "/etc/keyring.json", cfg.Crypto.KeyringPath)
				assert.Equal(t, "cHVi", cfg.Crypto.RecipientPublicKey)
				assert.Empty(t, cfg.Server.HTTPAddress)
			},
		},
		{
			name: "authority flags",
			args: []string{
				"-a", "127.0.0.1:8090",
				"-server-timeout", "5s",
				"-token-issuer", "issuer",
				"-private-key", "cHJpdg==",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:8090", cfg.Server.HTTPAddress)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "issuer", cfg.App.TokenIssuer)
				assert.Equal(t, "cHJpdg==", cfg.Crypto.PrivateKey)
				assert.Zero(t, cfg.Adapter.RequestTimeout)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "non-numeric batch count", args: []string{"-batch-count", "many"}},
		{name: "invalid backoff", args: []string{"-retry-backoff", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

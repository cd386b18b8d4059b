// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientConfig is the configuration view of the sync agent assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains device identity and token settings.
	App App
	// Adapter contains the authority address, sync path and timeout.
	Adapter Adapter
	// Storage contains the packet database settings.
	Storage Storage
	// Sync contains the batch and retry settings of the engine.
	Sync Sync
	// Crypto contains the recipient keyring settings.
	Crypto Crypto
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates the sync agent config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Sync:    cfg.Sync,
		Crypto: Crypto{
			KeyringPath:        cfg.Crypto.KeyringPath,
			RecipientPublicKey: cfg.Crypto.RecipientPublicKey,
		},
		Workers: cfg.Workers,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are accepted as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		MachineID     string   `json:"machine_id"`
		CenterID      string   `json:"center_id"`
		Language      string   `json:"language"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SyncPath       string   `json:"sync_path"`
	} `json:"adapter,omitempty"`

	Sync struct {
		BatchCount       int      `json:"batch_count"`
		RetryMaxAttempts int      `json:"retry_max_attempts"`
		RetryBackoff     Duration `json:"retry_backoff"`
	} `json:"sync,omitempty"`

	Crypto struct {
		KeyringPath        string `json:"keyring_path"`
		RecipientPublicKey string `json:"recipient_public_key"`
		PrivateKey         string `json:"private_key"`
	} `json:"crypto,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			MachineID:     jsonCfg.App.MachineID,
			CenterID:      jsonCfg.App.CenterID,
			Language:      jsonCfg.App.Language,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			SyncPath:       jsonCfg.Adapter.SyncPath,
		},
		Sync: Sync{
			BatchCount:       jsonCfg.Sync.BatchCount,
			RetryMaxAttempts: jsonCfg.Sync.RetryMaxAttempts,
			RetryBackoff:     time.Duration(jsonCfg.Sync.RetryBackoff),
		},
		Crypto: Crypto{
			KeyringPath:        jsonCfg.Crypto.KeyringPath,
			RecipientPublicKey: jsonCfg.Crypto.RecipientPublicKey,
			PrivateKey:         jsonCfg.Crypto.PrivateKey,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults for values no configuration source provided.
const (
	DefaultBatchCount       = 10
	DefaultRetryMaxAttempts = 2
	DefaultRetryBackoff     = time.Second

	DefaultDBDriver       = DriverSQLite
	DefaultDSN            = "packets.db"
	DefaultSyncPath       = "/registrationprocessor/v1/registrationstatus/sync"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultLanguage       = "eng"
	DefaultTokenIssuer    = "packet-sync"
	DefaultTokenDuration  = 5 * time.Minute
	DefaultServerAddress  = "localhost:8090"
)

// Supported SQL drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Language:      DefaultLanguage,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN, Driver: DefaultDBDriver},
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			SyncPath:       DefaultSyncPath,
		},
		Sync: Sync{
			BatchCount:       DefaultBatchCount,
			RetryMaxAttempts: DefaultRetryMaxAttempts,
			RetryBackoff:     DefaultRetryBackoff,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
	}
}

// WithDefaults returns a copy of s with every non-positive field replaced by
// its default. It is used by callers that build a [Sync] by hand instead of
// loading it.
func (s Sync) WithDefaults() Sync {
	if s.BatchCount <= 0 {
		s.BatchCount = DefaultBatchCount
	}
	if s.RetryMaxAttempts <= 0 {
		s.RetryMaxAttempts = DefaultRetryMaxAttempts
	}
	if s.RetryBackoff < 0 {
		s.RetryBackoff = DefaultRetryBackoff
	}
	return s
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-packet-sync/internal/adapter"
	"github.com/MKhiriev/go-packet-sync/internal/client"
	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/crypto"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/service"
	"github.com/MKhiriev/go-packet-sync/internal/store"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
	"github.com/MKhiriev/go-packet-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("packet-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("packet-sync-client", cfg.App.LogFile)

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run owns every resource it opens, so deferred cleanup completes before
// main exits on error.
func run(cfg *config.ClientConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create packet storage: %w", err)
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("close packet storage")
		}
	}()

	keyring, err := crypto.LoadKeyring(cfg.Crypto.KeyringPath, cfg.Crypto.RecipientPublicKey)
	if err != nil {
		return fmt.Errorf("load recipient keyring: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create authority transport: %w", err)
	}

	services := service.NewClientServices(storages, transport, keyring, utils.NewFileHasher(), cfg, log)

	app := client.NewApp(services, workers.NewClientWorkers(services, cfg.Workers, log), log)
	return app.Run()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

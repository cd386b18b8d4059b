// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/crypto"
	"github.com/MKhiriev/go-packet-sync/internal/handler"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/server"
	"github.com/MKhiriev/go-packet-sync/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("packet-sync-authority")
	cfg, err := config.GetAuthorityConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("sync_path", cfg.SyncPath).
		Msg("received configs")

	opener, err := crypto.NewEnvelopeOpener(cfg.PrivateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading private key")
	}

	services := service.NewAuthorityServices(opener, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

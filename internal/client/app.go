// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/service"
	"github.com/MKhiriev/go-packet-sync/internal/workers"
	"github.com/MKhiriev/go-packet-sync/models"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{services: services, workers: workers, logger: logger}
}

// Run blocks until SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	pending, err := a.services.PacketSyncService.PendingPackets(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.run").Msg("could not list pending packets")
	} else {
		a.logger.Info().Str("func", "App.run").Int("pending", len(pending)).Msg("sync agent starting")
	}

	res := a.services.PacketSyncService.SyncAll(ctx, models.TriggerStartup)
	if !res.Success {
		a.logger.Warn().
			Str("func", "App.run").
			Str("kind", res.Kind).
			Str("message", res.Message).
			Msg("startup sync failed")
	} else {
		a.logger.Info().
			Str("func", "App.run").
			Strs("synced_ids", res.SyncedIDs).
			Msg("startup sync finished")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("sync agent stopped")

	return nil
}

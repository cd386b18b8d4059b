// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers builds the background workers of the sync agent.
func NewClientWorkers(services *service.ClientServices, cfg config.Workers, log *logger.Logger) *Workers {
	return NewWorkers(
		NewPacketSyncJob(services.PacketSyncService, cfg.SyncInterval, log),
	)
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/service"
	"github.com/MKhiriev/go-packet-sync/models"
)

// PacketSyncJob runs a full packet sync on a fixed interval.
type PacketSyncJob struct {
	syncService service.PacketSyncService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPacketSyncJob creates a PacketSyncJob that calls syncService.SyncAll on a
// ticker. If interval is zero or negative it defaults to
// [config.DefaultSyncInterval]. The job is idle until Start is called.
func NewPacketSyncJob(syncService service.PacketSyncService, interval time.Duration, log *logger.Logger) *PacketSyncJob {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	return &PacketSyncJob{syncService: syncService, interval: interval, logger: log}
}

// Start implements [Worker]. It stops any previously running job, then
// launches a background goroutine that calls SyncAll every interval with the
// scheduled trigger point. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *PacketSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().
		Str("func", "PacketSyncJob.Start").
		Dur("interval", j.interval).
		Msg("scheduled packet sync started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				res := j.syncService.SyncAll(jobCtx, models.TriggerScheduled)
				if !res.Success {
					j.logger.Warn().
						Str("func", "PacketSyncJob.run").
						Str("kind", res.Kind).
						Str("message", res.Message).
						Msg("scheduled packet sync failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *PacketSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

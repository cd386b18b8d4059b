// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/mock"
	"github.com/MKhiriev/go-packet-sync/internal/service"
	"github.com/MKhiriev/go-packet-sync/internal/workers"
	"github.com/MKhiriev/go-packet-sync/models"
)

type lifecycleWorker struct {
	started, stopped chan struct{}
}

func newLifecycleWorker() *lifecycleWorker {
	return &lifecycleWorker{started: make(chan struct{}, 1), stopped: make(chan struct{}, 1)}
}

func (w *lifecycleWorker) Start(context.Context) { w.started <- struct{}{} }
func (w *lifecycleWorker) Stop()                 { w.stopped <- struct{}{} }

func runApp(t *testing.T, syncSvc service.PacketSyncService) *lifecycleWorker {
	t.Helper()
	worker := newLifecycleWorker()
	app := NewApp(&service.ClientServices{PacketSyncService: syncSvc}, workers.NewWorkers(worker), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.run(ctx) }()

	select {
	case <-worker.started:
	case <-time.After(time.Second):
		t.Fatal("workers were not started")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not stop")
	}
	return worker
}

func TestApp_Run_StartupSyncThenWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockPacketSyncService(ctrl)

	gomock.InOrder(
		syncSvc.EXPECT().PendingPackets(gomock.Any()).Return([]models.PacketStatus{{ID: "10001100020001"}}, nil),
		syncSvc.EXPECT().SyncAll(gomock.Any(), models.TriggerStartup).
			Return(models.SyncResult{Success: true, Message: "SUCCESS", SyncedIDs: []string{"10001100020001"}}),
	)

	worker := runApp(t, syncSvc)

	assert.Len(t, worker.stopped, 1, "workers must be stopped on shutdown")
}

func TestApp_Run_StartupFailureDoesNotStopAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockPacketSyncService(ctrl)

	syncSvc.EXPECT().PendingPackets(gomock.Any()).Return(nil, errors.New("db locked"))
	syncSvc.EXPECT().SyncAll(gomock.Any(), models.TriggerStartup).
		Return(models.SyncResult{Success: false, Kind: "ConnectivityFailure", Message: "down"})

	worker := runApp(t, syncSvc)

	assert.Len(t, worker.stopped, 1)
}

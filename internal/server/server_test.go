// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/handler"
	httphandler "github.com/MKhiriev/go-packet-sync/internal/handler/http"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
)

func testHandlers() *handler.Handlers {
	cfg := &config.AuthorityConfig{SyncPath: config.DefaultSyncPath}
	return &handler.Handlers{HTTP: httphandler.NewHandler(nil, cfg, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, config.DefaultRequestTimeout, h.server.ReadTimeout)
	assert.Equal(t, config.DefaultRequestTimeout, h.server.WriteTimeout)
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

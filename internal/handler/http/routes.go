// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// statusRoute is mounted under the sync path.
const statusRoute = "/status/{registrationID}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// device-authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post(h.cfg.SyncPath, h.syncPackets)
		r.Get(h.cfg.SyncPath+statusRoute, h.packetStatus)
	})

	return router
}

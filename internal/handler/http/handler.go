// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/service"
)

type Handler struct {
	services *service.AuthorityServices
	cfg      *config.AuthorityConfig

	logger *logger.Logger
}

func NewHandler(services *service.AuthorityServices, cfg *config.AuthorityConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

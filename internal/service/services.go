// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-packet-sync/internal/adapter"
	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/crypto"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/store"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
)

// ClientServices groups the services of the sync agent.
type ClientServices struct {
	Selector          PacketSelector
	Preconditions     PreconditionChecker
	PacketSyncService PacketSyncService
}

// NewClientServices wires the sync engine over its collaborators.
func NewClientServices(
	storages *store.Storages,
	transport adapter.Transport,
	keys crypto.KeyProvider,
	hasher utils.ContentHasher,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	selector := NewPacketSelector(storages.PacketRepository, log)
	checker := NewPreconditionChecker(cfg.App, cfg.Adapter.SyncPath, keys)

	syncSvc := NewPacketSyncService(
		storages.PacketRepository,
		selector,
		checker,
		crypto.NewEnvelopeCipher(keys),
		transport,
		hasher,
		SyncOptions{Sync: cfg.Sync, Endpoint: cfg.Adapter.SyncPath, Language: cfg.App.Language},
		log,
	)

	return &ClientServices{
		Selector:          selector,
		Preconditions:     checker,
		PacketSyncService: syncSvc,
	}
}

// AuthorityServices groups the services of the reference authority.
type AuthorityServices struct {
	AuthorityService AuthorityService
}

func NewAuthorityServices(opener crypto.EnvelopeOpener, log *logger.Logger) *AuthorityServices {
	return &AuthorityServices{AuthorityService: NewAuthorityService(opener, log)}
}

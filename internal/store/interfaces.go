// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-packet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PacketRepository is the packet store adapter used by the sync engine.
type PacketRepository interface {
	// QueryByStatus returns packets whose client status is in clientStatuses
	// or whose server status is in serverStatuses, oldest client change first.
	QueryByStatus(ctx context.Context, clientStatuses, serverStatuses []string) ([]models.Packet, error)
	// QueryByIDs returns the packets with the given ids. Unknown ids are
	// skipped.
	QueryByIDs(ctx context.Context, ids []string) ([]models.Packet, error)
	// GetByID returns the packet with id if it is in clientStatus, or
	// [ErrPacketNotFound].
	GetByID(ctx context.Context, clientStatus, id string) (models.Packet, error)
	// UpdateStatus sets the client status of one packet. Returns
	// [ErrPacketNotFound] when no row matches.
	UpdateStatus(ctx context.Context, id, clientStatus string) error
	// SavePackets inserts packet records in one transaction.
	SavePackets(ctx context.Context, packets ...models.Packet) error
}

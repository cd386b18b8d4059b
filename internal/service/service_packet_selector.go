// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/store"
	"github.com/MKhiriev/go-packet-sync/models"
)

type packetSelector struct {
	repo   store.PacketRepository
	logger *logger.Logger
}

// NewPacketSelector returns a [PacketSelector] reading from repo.
func NewPacketSelector(repo store.PacketRepository, log *logger.Logger) PacketSelector {
	return &packetSelector{repo: repo, logger: log}
}

// SelectEligible loads upload-pending and resend-requested packets and keeps
// those that were never synced, or whose resend request is older than the
// latest client-side change.
func (s *packetSelector) SelectEligible(ctx context.Context) ([]models.Packet, error) {
	candidates, err := s.repo.QueryByStatus(ctx, models.UploadPendingStatuses, []string{models.ServerStatusResend})
	if err != nil {
		return nil, fmt.Errorf("%w: query sync candidates: %w", ErrStore, err)
	}

	eligible := make([]models.Packet, 0, len(candidates))
	for _, p := range candidates {
		if isEligible(p) {
			eligible = append(eligible, p)
		}
	}

	s.logger.Debug().
		Str("func", "packetSelector.SelectEligible").
		Int("candidates", len(candidates)).
		Int("eligible", len(eligible)).
		Msg("selected sync candidates")

	return eligible, nil
}

func (s *packetSelector) ListPending(ctx context.Context) ([]models.PacketStatus, error) {
	packets, err := s.SelectEligible(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]models.PacketStatus, 0, len(packets))
	for _, p := range packets {
		pending = append(pending, models.PacketStatus{
			ID:           p.ID,
			ClientStatus: p.ClientStatus,
			ServerStatus: p.ServerStatus,
			AckFilePath:  p.AckFilePath,
		})
	}
	return pending, nil
}

// isEligible never offers a SYNCED record: marking a packet synced stamps a
// fresh client timestamp, which would otherwise make a stale RESEND look
// newer than the server state.
func isEligible(p models.Packet) bool {
	if p.IsSynced() {
		return false
	}
	if p.ServerStatus == nil {
		return true
	}
	return p.IsResendRequested() &&
		p.ClientStatusTimestamp != nil &&
		p.ServerStatusTimestamp != nil &&
		p.ClientStatusTimestamp.After(*p.ServerStatusTimestamp)
}

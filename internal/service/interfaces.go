// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the packet sync engine: candidate selection,
// precondition checks, the sync executor and the reference authority logic.
package service

import (
	"context"

	"github.com/MKhiriev/go-packet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PacketSelector decides which packets are eligible for (re-)sync.
type PacketSelector interface {
	// SelectEligible returns eligible packets, oldest client change first.
	// It has no side effects.
	SelectEligible(ctx context.Context) ([]models.Packet, error)

	// ListPending returns the eligible set as lightweight descriptors.
	ListPending(ctx context.Context) ([]models.PacketStatus, error)
}

// PreconditionChecker decides whether sync is currently permitted.
type PreconditionChecker interface {
	// Check returns an error wrapping [ErrPreconditionFailed] when sync must
	// not run.
	Check(ctx context.Context) error

	// Pause makes every following Check fail until Resume is called.
	Pause()
	Resume()
}

// PacketSyncService announces packets to the authority and reconciles its
// verdicts into the packet store. Sync calls never return raw errors; the
// outcome is described by the returned [models.SyncResult].
type PacketSyncService interface {
	// SyncAll syncs up to the configured batch of eligible packets.
	SyncAll(ctx context.Context, triggerPoint string) models.SyncResult

	// SyncSpecific syncs the given packets regardless of eligibility and
	// batch size. Packets already synced are skipped.
	SyncSpecific(ctx context.Context, triggerPoint string, ids []string) models.SyncResult

	// IsSynced reports whether the packet has been acknowledged.
	IsSynced(ctx context.Context, id string) (bool, error)

	// PendingPackets lists the packets the next full sync would consider.
	PendingPackets(ctx context.Context) ([]models.PacketStatus, error)
}

// AuthorityService implements the receiving side of the sync contract.
type AuthorityService interface {
	// ProcessSync opens the envelope sent by machineID and returns the
	// per-item verdicts. Envelope and validation failures are reported in
	// the Errors field of the response, never as a Go error.
	ProcessSync(ctx context.Context, machineID, payload string) models.SyncResponse

	// Status returns the last recorded verdict for a packet.
	Status(registrationID string) (string, bool)
}

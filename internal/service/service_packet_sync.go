// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-packet-sync/internal/adapter"
	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/crypto"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/retry"
	"github.com/MKhiriev/go-packet-sync/internal/store"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
	"github.com/MKhiriev/go-packet-sync/models"
)

// SyncOptions configures a [PacketSyncService].
type SyncOptions struct {
	Sync config.Sync
	// Endpoint is the authority path packets are posted to.
	Endpoint string
	// Language is the fallback language code of sync items.
	Language string
}

type packetSyncService struct {
	repo      store.PacketRepository
	selector  PacketSelector
	checker   PreconditionChecker
	cipher    crypto.EnvelopeCipher
	transport adapter.Transport
	items     *itemBuilder

	batchCount int
	policy     retry.Policy
	endpoint   string
	now        func() time.Time

	// held for the whole retried attempt; one round-trip at a time
	mu sync.Mutex

	logger *logger.Logger
}

// NewPacketSyncService wires the sync executor. Zero values in opts.Sync are
// replaced with defaults.
func NewPacketSyncService(
	repo store.PacketRepository,
	selector PacketSelector,
	checker PreconditionChecker,
	cipher crypto.EnvelopeCipher,
	transport adapter.Transport,
	hasher utils.ContentHasher,
	opts SyncOptions,
	log *logger.Logger,
) PacketSyncService {
	syncCfg := opts.Sync.WithDefaults()
	language := opts.Language
	if language == "" {
		language = config.DefaultLanguage
	}

	return &packetSyncService{
		repo:      repo,
		selector:  selector,
		checker:   checker,
		cipher:    cipher,
		transport: transport,
		items:     &itemBuilder{hasher: hasher, language: language, logger: log},

		batchCount: syncCfg.BatchCount,
		policy: retry.Policy{
			MaxAttempts: syncCfg.RetryMaxAttempts,
			Backoff:     syncCfg.RetryBackoff,
			Retryable:   IsRetryable,
		},
		endpoint: opts.Endpoint,
		now:      time.Now,
		logger:   log,
	}
}

func (s *packetSyncService) SyncAll(ctx context.Context, triggerPoint string) models.SyncResult {
	return s.sync(ctx, triggerPoint, func(ctx context.Context) ([]models.Packet, error) {
		packets, err := s.selector.SelectEligible(ctx)
		if err != nil {
			return nil, err
		}
		// cap after filtering so terminal records cannot fill the batch
		packets = dropSynced(packets)
		if len(packets) > s.batchCount {
			packets = packets[:s.batchCount]
		}
		return packets, nil
	})
}

func (s *packetSyncService) SyncSpecific(ctx context.Context, triggerPoint string, ids []string) models.SyncResult {
	return s.sync(ctx, triggerPoint, func(ctx context.Context) ([]models.Packet, error) {
		if len(ids) == 0 {
			return nil, nil
		}
		packets, err := s.repo.QueryByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: query packets by id: %w", ErrStore, err)
		}
		return packets, nil
	})
}

func (s *packetSyncService) IsSynced(ctx context.Context, id string) (bool, error) {
	p, err := s.repo.GetByID(ctx, models.ClientStatusSynced, id)
	if errors.Is(err, store.ErrPacketNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return p.ID != "", nil
}

func (s *packetSyncService) PendingPackets(ctx context.Context) ([]models.PacketStatus, error) {
	return s.selector.ListPending(ctx)
}

type packetResolver func(ctx context.Context) ([]models.Packet, error)

// sync runs one retried attempt under the executor lock and converts its
// outcome into a result.
func (s *packetSyncService) sync(ctx context.Context, triggerPoint string, resolve packetResolver) models.SyncResult {
	log := s.logger.With().
		Str("func", "packetSyncService.sync").
		Str("trigger_point", triggerPoint).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	synced, err := retry.Do(ctx, s.policy, &logger.Logger{Logger: log}, func(ctx context.Context, n int) ([]string, error) {
		log.Debug().Int("attempt", n).Msg("sync attempt started")
		return s.attempt(ctx, triggerPoint, resolve)
	})
	if err != nil {
		kind := KindOf(err)
		log.Error().Str("kind", string(kind)).Err(err).Msg("sync failed")
		return models.SyncResult{
			Success:      false,
			Message:      err.Error(),
			Kind:         string(kind),
			TriggerPoint: triggerPoint,
		}
	}

	log.Info().Int("synced", len(synced)).Msg("sync finished")
	return models.SyncResult{
		Success:      true,
		Message:      models.SyncStatusSuccess,
		TriggerPoint: triggerPoint,
		SyncedIDs:    synced,
	}
}

// attempt performs a single sync round-trip and returns the ids the
// authority acknowledged.
func (s *packetSyncService) attempt(ctx context.Context, triggerPoint string, resolve packetResolver) ([]string, error) {
	if strings.TrimSpace(triggerPoint) == "" {
		return nil, fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrInvalidTriggerPoint)
	}
	if err := s.checker.Check(ctx); err != nil {
		return nil, err
	}

	packets, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	packets = dropSynced(packets)
	if len(packets) == 0 {
		s.logger.Debug().
			Str("func", "packetSyncService.attempt").
			Str("trigger_point", triggerPoint).
			Msg("nothing to sync")
		return nil, nil
	}

	items := s.items.buildItems(packets)
	s.warnMixedReferences(items, triggerPoint)

	payload, err := s.seal(items)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.PostSync(ctx, s.endpoint, payload, triggerPoint)
	if err != nil {
		return nil, mapTransportError(err)
	}

	return s.reconcile(ctx, items, resp, triggerPoint)
}

// seal serializes the request, encrypts it for the first item's recipient
// and base64 encodes the result.
func (s *packetSyncService) seal(items []models.SyncItem) (string, error) {
	request := models.NewSyncRequest(items, s.now())

	plaintext, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("%w: encode sync request: %w", ErrEncryption, err)
	}

	sealed, err := s.cipher.Encrypt(items[0].RegistrationID, plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *packetSyncService) reconcile(ctx context.Context, items []models.SyncItem, resp models.SyncResponse, triggerPoint string) ([]string, error) {
	log := s.logger.With().
		Str("func", "packetSyncService.reconcile").
		Str("trigger_point", triggerPoint).
		Logger()

	switch {
	case resp.Response != nil:
	case resp.Errors != nil:
		return nil, fmt.Errorf("%w: %s", ErrServerRejected, describeServiceErrors(resp.Errors))
	default:
		return nil, fmt.Errorf("%w: neither response nor errors present", ErrMalformedResponse)
	}

	statuses := resp.Statuses()
	synced := make([]string, 0, len(items))

	for _, item := range items {
		st := models.SyncStatus{RegistrationID: item.RegistrationID, Status: statuses[item.RegistrationID]}
		if !st.IsSuccess() {
			log.Warn().
				Str("packet_id", item.RegistrationID).
				Str("status", st.Status).
				Msg("packet not acknowledged")
			continue
		}

		if err := s.repo.UpdateStatus(ctx, item.RegistrationID, models.ClientStatusSynced); err != nil {
			log.Error().
				Str("packet_id", item.RegistrationID).
				Err(err).
				Msg("failed to mark packet as synced")
			continue
		}
		synced = append(synced, item.RegistrationID)
	}

	log.Info().
		Int("batch_size", len(items)).
		Int("synced", len(synced)).
		Msg("sync response reconciled")

	return synced, nil
}

func (s *packetSyncService) warnMixedReferences(items []models.SyncItem, triggerPoint string) {
	first := crypto.RefID(items[0].RegistrationID)
	for _, item := range items[1:] {
		if ref := crypto.RefID(item.RegistrationID); ref != first {
			s.logger.Warn().
				Str("func", "packetSyncService.warnMixedReferences").
				Str("trigger_point", triggerPoint).
				Str("envelope_ref", first).
				Str("packet_id", item.RegistrationID).
				Str("packet_ref", ref).
				Msg("batch spans several center/machine references; sealing for the first")
			return
		}
	}
}

func dropSynced(packets []models.Packet) []models.Packet {
	kept := make([]models.Packet, 0, len(packets))
	for _, p := range packets {
		if !p.IsSynced() {
			kept = append(kept, p)
		}
	}
	return kept
}

func describeServiceErrors(errs []models.ServiceError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.ErrorCode+" "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-packet-sync/internal/crypto"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/models"
)

// Error codes reported by the authority in [models.SyncResponse.Errors].
const (
	CodeInvalidEncoding = "PSY-ENV-001"
	CodeInvalidEnvelope = "PSY-ENV-002"
	CodeInvalidRequest  = "PSY-REQ-001"
	CodeInvalidIdentity = "PSY-REQ-002"
)

type authorityService struct {
	opener crypto.EnvelopeOpener
	now    func() time.Time

	mu       sync.RWMutex
	statuses map[string]string

	logger *logger.Logger
}

// NewAuthorityService returns an [AuthorityService] opening envelopes with
// opener. Verdicts are kept in memory.
func NewAuthorityService(opener crypto.EnvelopeOpener, log *logger.Logger) AuthorityService {
	return &authorityService{
		opener:   opener,
		now:      time.Now,
		statuses: make(map[string]string),
		logger:   log,
	}
}

func (s *authorityService) ProcessSync(ctx context.Context, machineID, payload string) models.SyncResponse {
	log := logger.FromContext(ctx).With().
		Str("func", "authorityService.ProcessSync").
		Str("machine_id", machineID).
		Logger()

	request, code, err := s.openRequest(payload)
	if err != nil {
		log.Warn().Str("error_code", code).Err(err).Msg("sync request rejected")
		return s.reject(code, err)
	}

	statuses := make([]models.SyncStatus, 0, len(request.Request))
	for _, item := range request.Request {
		statuses = append(statuses, models.SyncStatus{
			RegistrationID: item.RegistrationID,
			Status:         verdict(item),
		})
	}

	s.mu.Lock()
	for _, st := range statuses {
		if st.Status == models.SyncStatusSuccess {
			s.statuses[st.RegistrationID] = st.Status
		}
	}
	s.mu.Unlock()

	log.Info().Int("batch_size", len(statuses)).Msg("sync request processed")

	return models.SyncResponse{
		ID:           models.SyncRequestID,
		Version:      models.SyncRequestVersion,
		ResponseTime: s.now().UTC().Format(models.RequestTimeLayout),
		Response:     statuses,
	}
}

func (s *authorityService) Status(registrationID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.statuses[registrationID]
	return status, ok
}

// openRequest returns the decoded request, or the error code and cause of
// the first failed step.
func (s *authorityService) openRequest(payload string) (models.SyncRequest, string, error) {
	sealed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.SyncRequest{}, CodeInvalidEncoding, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	plaintext, err := s.opener.Decrypt(sealed)
	if err != nil {
		return models.SyncRequest{}, CodeInvalidEnvelope, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	var request models.SyncRequest
	if err = json.Unmarshal(plaintext, &request); err != nil {
		return models.SyncRequest{}, CodeInvalidRequest, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if request.ID != models.SyncRequestID || request.Version != models.SyncRequestVersion {
		return models.SyncRequest{}, CodeInvalidIdentity,
			fmt.Errorf("%w: unexpected id %q version %q", ErrInvalidRequest, request.ID, request.Version)
	}

	return request, "", nil
}

func (s *authorityService) reject(code string, err error) models.SyncResponse {
	return models.SyncResponse{
		ID:           models.SyncRequestID,
		Version:      models.SyncRequestVersion,
		ResponseTime: s.now().UTC().Format(models.RequestTimeLayout),
		Errors:       []models.ServiceError{{ErrorCode: code, Message: err.Error()}},
	}
}

func verdict(item models.SyncItem) string {
	if item.RegistrationID == "" || item.PacketHashValue == nil {
		return models.SyncStatusFailure
	}
	return models.SyncStatusSuccess
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
	"github.com/MKhiriev/go-packet-sync/models"
)

// Request headers understood by the authority.
const (
	HeaderTraceID      = "X-Trace-ID"
	HeaderTriggerPoint = "X-Trigger-Point"
	HeaderTimestamp    = "timestamp"
	HeaderRefID        = "Center-Machine-RefId"
)

type httpTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	app config.App
	now func() time.Time

	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. appCfg supplies the identity and signing key of the
// request token.
//
// Returns [ErrInvalidAddress] (wrapped) if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a valid URL.
func NewHTTPTransport(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if appCfg.TokenDuration <= 0 {
		appCfg.TokenDuration = config.DefaultTokenDuration
	}

	return &httpTransport{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		app:    appCfg,
		now:    time.Now,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PostSync implements [Transport]. The payload is sent as a JSON string.
func (h *httpTransport) PostSync(ctx context.Context, endpoint, payload, triggerPoint string) (models.SyncResponse, error) {
	token, err := utils.GenerateJWTToken(h.app.TokenIssuer, h.app.MachineID, h.app.TokenDuration, h.app.TokenSignKey)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrSigningRequest, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("encode sync payload: %w", err)
	}

	traceID := utils.GetTraceIDFromContext(ctx)
	if traceID == "" {
		traceID = h.ids.Generate()
	}

	log := h.logger.With().
		Str("func", "httpTransport.PostSync").
		Str("trace_id", traceID).
		Str("trigger_point", triggerPoint).
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token.SignedString).
		SetHeader(HeaderTraceID, traceID).
		SetHeader(HeaderTriggerPoint, triggerPoint).
		SetHeader(HeaderTimestamp, h.now().UTC().Format(models.RequestTimeLayout)).
		SetHeader(HeaderRefID, h.app.CenterID+"_"+h.app.MachineID).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		log.Warn().Err(err).Msg("sync request failed")
		return models.SyncResponse{}, mapRequestError(err)
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("sync response received")

	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return sr, nil
}

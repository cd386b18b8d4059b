// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the sync engine to reach
// the registration authority.
//
// The primary abstraction is [Transport], which decouples the sync service
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTransport]).
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapRequestError and mapHTTPError so that callers can
// use [errors.Is] to tell connectivity problems (worth retrying) from
// application failures.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-packet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs the sync round-trip with the authority.
type Transport interface {
	// PostSync sends payload (the base64 encoded encrypted envelope) to
	// endpoint and decodes the authority's reply. triggerPoint is forwarded
	// as request metadata.
	//
	// Errors wrap one of [ErrConnectivity], [ErrUnexpectedStatus],
	// [ErrMalformedResponse] or [ErrSigningRequest].
	PostSync(ctx context.Context, endpoint, payload, triggerPoint string) (models.SyncResponse, error)
}

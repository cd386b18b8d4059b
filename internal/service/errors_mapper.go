// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-packet-sync/internal/adapter"
)

// mapTransportError translates a transport error into a sync error kind.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrConnectivity):
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	case errors.Is(err, adapter.ErrSigningRequest):
		return fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return err
}

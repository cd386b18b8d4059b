// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/crypto"
)

type preconditionChecker struct {
	app      config.App
	endpoint string
	keys     crypto.KeyProvider

	paused atomic.Bool
}

// NewPreconditionChecker returns a [PreconditionChecker] requiring a device
// identity, a sync endpoint and at least one recipient key.
func NewPreconditionChecker(app config.App, endpoint string, keys crypto.KeyProvider) PreconditionChecker {
	return &preconditionChecker{app: app, endpoint: endpoint, keys: keys}
}

func (c *preconditionChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
	}

	switch {
	case c.paused.Load():
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrSyncPaused)
	case strings.TrimSpace(c.app.MachineID) == "":
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNoMachineID)
	case strings.TrimSpace(c.app.CenterID) == "":
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNoCenterID)
	case strings.TrimSpace(c.endpoint) == "":
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNoSyncEndpoint)
	case c.keys == nil || !c.keys.Ready():
		return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNoRecipientKeys)
	}

	return nil
}

func (c *preconditionChecker) Pause() {
	c.paused.Store(true)
}

func (c *preconditionChecker) Resume() {
	c.paused.Store(false)
}

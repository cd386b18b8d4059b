// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
)

// ErrorKind names the class of a failed sync attempt. It is reported in
// [models.SyncResult.Kind].
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindPreconditionFailed ErrorKind = "PreconditionFailed"
	KindConnectivity       ErrorKind = "ConnectivityFailure"
	KindEncryption         ErrorKind = "EncryptionFailure"
	KindMalformedResponse  ErrorKind = "MalformedResponse"
	KindServerRejected     ErrorKind = "ServerRejected"
	KindLocalIO            ErrorKind = "LocalIOFailure"
	KindStore              ErrorKind = "StoreFailure"
	KindUnknown            ErrorKind = "Unknown"
)

var (
	ErrPreconditionFailed = errors.New("sync precondition not met")
	ErrConnectivity       = errors.New("authority unreachable")
	ErrEncryption         = errors.New("envelope encryption failed")
	ErrMalformedResponse  = errors.New("malformed sync response")
	ErrServerRejected     = errors.New("sync rejected by authority")
	ErrLocalIO            = errors.New("local content unreadable")
	ErrStore              = errors.New("packet store failure")
)

// Precondition failures.
var (
	ErrSyncPaused          = errors.New("sync is paused")
	ErrNoMachineID         = errors.New("machine id is not configured")
	ErrNoCenterID          = errors.New("center id is not configured")
	ErrNoSyncEndpoint      = errors.New("sync endpoint is not configured")
	ErrNoRecipientKeys     = errors.New("no recipient keys available")
	ErrInvalidTriggerPoint = errors.New("trigger point is empty")
)

// Authority request validation.
var (
	ErrInvalidEnvelope = errors.New("invalid sync envelope")
	ErrInvalidRequest  = errors.New("invalid sync request")
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrPreconditionFailed, KindPreconditionFailed},
	{ErrConnectivity, KindConnectivity},
	{ErrEncryption, KindEncryption},
	{ErrMalformedResponse, KindMalformedResponse},
	{ErrServerRejected, KindServerRejected},
	{ErrLocalIO, KindLocalIO},
	{ErrStore, KindStore},
}

// KindOf returns the kind of the first sentinel found in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// IsRetryable reports whether err is worth another sync attempt. Only
// connectivity failures are.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnectivity)
}

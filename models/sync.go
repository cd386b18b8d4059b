// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Envelope identity expected by the authority.
const (
	SyncRequestID      = "mosip.registration.sync"
	SyncRequestVersion = "1.0"
)

// SyncStatusSuccess is the per-item status the authority reports for an
// accepted packet. Comparison is case-insensitive.
const (
	SyncStatusSuccess = "SUCCESS"
	SyncStatusFailure = "FAILURE"
)

// RequestTimeLayout is the ISO-8601 UTC layout used for request and response
// timestamps.
const RequestTimeLayout = "2006-01-02T15:04:05.000Z"

// Trigger points used by the built-in callers. Any non-empty tag is accepted.
const (
	TriggerScheduled = "System"
	TriggerStartup   = "Startup"
	TriggerManual    = "User"
)

// SyncItem describes one packet inside a sync request.
type SyncItem struct {
	RegistrationID   string `json:"registrationId"`
	RegistrationType string `json:"registrationType"`

	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LangCode string `json:"langCode,omitempty"`

	// PacketHashValue and PacketSize are nil when the content file could not
	// be read.
	PacketHashValue *string `json:"packetHashValue,omitempty"`
	PacketSize      *int64  `json:"packetSize,omitempty"`

	SupervisorStatus  string  `json:"supervisorStatus"`
	SupervisorComment *string `json:"supervisorComment,omitempty"`
}

// SyncRequest is the envelope plaintext: it is serialized, encrypted as a
// whole and base64-encoded before transmission.
type SyncRequest struct {
	ID          string     `json:"id"`
	Version     string     `json:"version"`
	RequestTime string     `json:"requesttime"`
	Request     []SyncItem `json:"request"`
}

// NewSyncRequest builds an envelope for items stamped with now (UTC).
func NewSyncRequest(items []SyncItem, now time.Time) SyncRequest {
	return SyncRequest{
		ID:          SyncRequestID,
		Version:     SyncRequestVersion,
		RequestTime: now.UTC().Format(RequestTimeLayout),
		Request:     items,
	}
}

// SyncStatus is the authority's verdict for a single packet.
type SyncStatus struct {
	RegistrationID string `json:"registrationId"`
	Status         string `json:"status"`
}

// IsSuccess reports whether the authority accepted the packet.
func (s SyncStatus) IsSuccess() bool {
	return strings.EqualFold(s.Status, SyncStatusSuccess)
}

// ServiceError is an application-level rejection returned by the authority.
type ServiceError struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// SyncResponse is the authority's reply. Exactly one of Response and Errors
// is expected to be set.
type SyncResponse struct {
	ID           string         `json:"id"`
	Version      string         `json:"version"`
	ResponseTime string         `json:"responsetime"`
	Response     []SyncStatus   `json:"response"`
	Errors       []ServiceError `json:"errors"`
}

// Statuses indexes the per-item statuses by registration id. When an id is
// reported more than once the last entry wins.
func (r SyncResponse) Statuses() map[string]string {
	statuses := make(map[string]string, len(r.Response))
	for _, st := range r.Response {
		statuses[st.RegistrationID] = st.Status
	}
	return statuses
}

// SyncResult is the structured outcome of a sync call. Sync entry points
// never return raw errors; failures are described by Kind and Message.
type SyncResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Kind         string   `json:"kind,omitempty"`
	TriggerPoint string   `json:"trigger_point"`
	SyncedIDs    []string `json:"synced_ids,omitempty"`
}

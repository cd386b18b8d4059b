// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Client-side packet status codes. A packet moves from one of the
// upload-pending statuses to ClientStatusSynced once the authority has
// acknowledged it.
const (
	ClientStatusApproved   = "APPROVED"
	ClientStatusRejected   = "REJECTED"
	ClientStatusReRegister = "RE_REGISTER"
	ClientStatusSynced     = "SYNCED"
)

// ServerStatusResend is the server status the authority sets when it asks
// the client to send a packet again.
const ServerStatusResend = "RESEND"

// UploadPendingStatuses lists the client statuses of packets that are waiting
// to be announced to the authority.
var UploadPendingStatuses = []string{
	ClientStatusApproved,
	ClientStatusRejected,
	ClientStatusReRegister,
}

const (
	ackFileSuffix     = "_Ack.html"
	contentFileSuffix = ".zip"
)

// Packet is a locally persisted packet record. The sync engine only reads
// the record and advances ClientStatus; everything else is owned by the
// upstream packet-creation flow.
type Packet struct {
	// ID is the unique, immutable packet identifier (registration id).
	ID string `json:"id"`

	// Type is the registration type (NEW, UPDATE, LOST, ...).
	Type string `json:"type"`

	ClientStatus          string     `json:"client_status"`
	ClientStatusComment   *string    `json:"client_status_comment,omitempty"`
	ClientStatusTimestamp *time.Time `json:"client_status_timestamp,omitempty"`

	// ServerStatus mirrors the last known server-side status. nil means the
	// packet was never synced.
	ServerStatus          *string    `json:"server_status,omitempty"`
	ServerStatusTimestamp *time.Time `json:"server_status_timestamp,omitempty"`

	// AdditionalInfo is an opaque JSON blob decoded into [RegistrationData].
	AdditionalInfo []byte `json:"additional_info,omitempty"`

	// AckFilePath is the acknowledgement file path; the packet content file
	// is derived from it via ContentFilePath.
	AckFilePath string `json:"ack_file_path"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsSynced reports whether the packet has already been acknowledged by the
// authority.
func (p Packet) IsSynced() bool {
	return strings.EqualFold(p.ClientStatus, ClientStatusSynced)
}

// IsResendRequested reports whether the last known server status asks for
// the packet to be sent again.
func (p Packet) IsResendRequested() bool {
	return p.ServerStatus != nil && strings.EqualFold(*p.ServerStatus, ServerStatusResend)
}

// ContentFilePath returns the path of the packet content file. The
// acknowledgement suffix is swapped for the archive extension; any other
// path is returned unchanged.
func (p Packet) ContentFilePath() string {
	if strings.HasSuffix(p.AckFilePath, ackFileSuffix) {
		return strings.TrimSuffix(p.AckFilePath, ackFileSuffix) + contentFileSuffix
	}
	return p.AckFilePath
}

// PacketStatus is a lightweight descriptor of a packet pending sync.
type PacketStatus struct {
	ID           string  `json:"id"`
	ClientStatus string  `json:"client_status"`
	ServerStatus *string `json:"server_status,omitempty"`
	AckFilePath  string  `json:"ack_file_path"`
}

// RegistrationData is the demographic summary stored in
// [Packet.AdditionalInfo].
type RegistrationData struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LangCode string `json:"langCode"`
}

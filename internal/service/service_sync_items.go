// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
	"github.com/MKhiriev/go-packet-sync/models"
)

// itemBuilder turns packet records into sync items. Per-item failures are
// logged and leave the affected fields empty.
type itemBuilder struct {
	hasher   utils.ContentHasher
	language string
	logger   *logger.Logger
}

func (b *itemBuilder) buildItems(packets []models.Packet) []models.SyncItem {
	items := make([]models.SyncItem, 0, len(packets))
	for _, p := range packets {
		items = append(items, b.buildItem(p))
	}
	return items
}

func (b *itemBuilder) buildItem(p models.Packet) models.SyncItem {
	item := models.SyncItem{
		RegistrationID:    p.ID,
		RegistrationType:  strings.ToUpper(p.Type),
		SupervisorStatus:  supervisorStatus(p.ClientStatus),
		SupervisorComment: p.ClientStatusComment,
	}

	if len(p.AdditionalInfo) > 0 {
		data, err := decodeRegistrationData(p.AdditionalInfo)
		if err != nil {
			b.logger.Error().
				Str("func", "itemBuilder.buildItem").
				Str("packet_id", p.ID).
				Err(err).
				Msg("skipping demographic data")
		} else {
			item.Name = data.Name
			item.Phone = data.Phone
			item.Email = data.Email
			item.LangCode = b.langCode(data.LangCode)
		}
	}

	hash, size, err := b.contentDigest(p)
	if err != nil {
		b.logger.Error().
			Str("func", "itemBuilder.buildItem").
			Str("packet_id", p.ID).
			Str("path", p.ContentFilePath()).
			Err(err).
			Msg("packet content digest unavailable")
	} else {
		item.PacketHashValue = &hash
		item.PacketSize = &size
	}

	return item
}

func (b *itemBuilder) contentDigest(p models.Packet) (string, int64, error) {
	if b.hasher == nil {
		return "", 0, fmt.Errorf("%w: no content hasher", ErrLocalIO)
	}
	hash, size, err := b.hasher.HashAndSize(p.ContentFilePath())
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrLocalIO, err)
	}
	return hash, size, nil
}

// langCode keeps the first entry of a comma separated list.
func (b *itemBuilder) langCode(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return b.language
}

func decodeRegistrationData(raw []byte) (models.RegistrationData, error) {
	var data models.RegistrationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.RegistrationData{}, fmt.Errorf("decode registration data: %w", err)
	}
	return data, nil
}

func supervisorStatus(clientStatus string) string {
	if strings.EqualFold(clientStatus, models.ClientStatusReRegister) {
		return models.ClientStatusApproved
	}
	return clientStatus
}

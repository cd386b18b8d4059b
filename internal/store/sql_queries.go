// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-packet-sync/models"
)

const registrationTable = "registration"

var packetColumns = []string{
	"id",
	"reg_type",
	"client_status_code",
	"client_status_comment",
	"client_status_dtimes",
	"server_status_code",
	"server_status_dtimes",
	"additional_info",
	"ack_filename",
	"cr_dtimes",
	"upd_dtimes",
}

// oldest client change first; never-stamped packets lead
var packetOrder = []string{
	"client_status_dtimes ASC NULLS FIRST",
	"id ASC",
}

func selectPackets(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(packetColumns...).From(registrationTable)
}

// buildQueryByStatusQuery selects packets whose client status is one of
// clientStatuses or whose server status is one of serverStatuses. Server
// statuses match case-insensitively.
func buildQueryByStatusQuery(b sq.StatementBuilderType, clientStatuses, serverStatuses []string) (string, []any, error) {
	upperServerStatuses := make([]string, 0, len(serverStatuses))
	for _, st := range serverStatuses {
		upperServerStatuses = append(upperServerStatuses, strings.ToUpper(st))
	}

	return selectPackets(b).
		Where(sq.Or{
			sq.Eq{"client_status_code": clientStatuses},
			sq.Eq{"UPPER(server_status_code)": upperServerStatuses},
		}).
		OrderBy(packetOrder...).
		ToSql()
}

func buildQueryByIDsQuery(b sq.StatementBuilderType, ids []string) (string, []any, error) {
	return selectPackets(b).
		Where(sq.Eq{"id": ids}).
		OrderBy(packetOrder...).
		ToSql()
}

func buildGetByIDQuery(b sq.StatementBuilderType, clientStatus, id string) (string, []any, error) {
	return selectPackets(b).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"client_status_code": clientStatus}).
		ToSql()
}

func buildUpdateStatusQuery(b sq.StatementBuilderType, id, clientStatus string, now time.Time) (string, []any, error) {
	return b.Update(registrationTable).
		Set("client_status_code", clientStatus).
		Set("client_status_dtimes", now).
		Set("upd_dtimes", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertPacketQuery(b sq.StatementBuilderType, p models.Packet) (string, []any, error) {
	return b.Insert(registrationTable).
		Columns(packetColumns...).
		Values(
			p.ID,
			p.Type,
			p.ClientStatus,
			p.ClientStatusComment,
			p.ClientStatusTimestamp,
			p.ServerStatus,
			p.ServerStatusTimestamp,
			nullableBytes(p.AdditionalInfo),
			p.AckFilePath,
			p.CreatedAt,
			p.UpdatedAt,
		).
		ToSql()
}

// nullableBytes stores an empty blob as NULL.
func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-packet-sync/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildQueryByStatusQuery(t *testing.T) {
	tests := []struct {
		name       string
		b          sq.StatementBuilderType
		client     []string
		server     []string
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "sqlite: pending statuses or resend",
			b:      questionBuilder,
			client: models.UploadPendingStatuses,
			server: []string{models.ServerStatusResend},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "FROM registration")
				assert.Contains(t, query, "client_status_code IN (?,?,?)")
				assert.Contains(t, query, "UPPER(server_status_code) IN (?)")
				assert.Contains(t, query, " OR ")
				assert.Contains(t, query, "ORDER BY client_status_dtimes ASC NULLS FIRST, id ASC")
				assert.Equal(t, []any{"APPROVED", "REJECTED", "RE_REGISTER", "RESEND"}, args)
			},
		},
		{
			name:   "postgres: dollar placeholders",
			b:      dollarBuilder,
			client: []string{models.ClientStatusApproved},
			server: []string{models.ServerStatusResend},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "client_status_code IN ($1)")
				assert.Contains(t, query, "UPPER(server_status_code) IN ($2)")
				assert.Len(t, args, 2)
			},
		},
		{
			name:   "server statuses are upper-cased",
			b:      questionBuilder,
			client: []string{models.ClientStatusApproved},
			server: []string{"resend"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "UPPER(server_status_code) IN (?)")
				assert.Equal(t, []any{"APPROVED", "RESEND"}, args)
			},
		},
		{
			name:   "empty server statuses never match",
			b:      questionBuilder,
			client: []string{models.ClientStatusApproved},
			server: nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "(1=0)")
				assert.Equal(t, []any{"APPROVED"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildQueryByStatusQuery(tt.b, tt.client, tt.server)
			require.NoError(t, err)
			q := strings.ToLower(query)
			for _, col := range packetColumns {
				require.Contains(t, q, col, "query should contain column %q", col)
			}
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildQueryByIDsQuery(t *testing.T) {
	query, args, err := buildQueryByIDsQuery(dollarBuilder, []string{"p1", "p2", "p3"})
	require.NoError(t, err)

	// squirrel generates IN ($1,$2,$3) for a slice.
	assert.Contains(t, query, "WHERE id IN ($1,$2,$3)")
	assert.Equal(t, []any{"p1", "p2", "p3"}, args)
}

func Test_buildGetByIDQuery(t *testing.T) {
	query, args, err := buildGetByIDQuery(questionBuilder, models.ClientStatusSynced, "p1")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = ? AND client_status_code = ?")
	assert.Equal(t, []any{"p1", "SYNCED"}, args)
}

func Test_buildUpdateStatusQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpdateStatusQuery(dollarBuilder, "p1", models.ClientStatusSynced, now)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE registration SET client_status_code = $1, client_status_dtimes = $2, upd_dtimes = $3 WHERE id = $4",
		query)
	assert.Equal(t, []any{"SYNCED", now, now, "p1"}, args)
}

func Test_buildInsertPacketQuery(t *testing.T) {
	comment := "ok"
	packet := models.Packet{
		ID:                  "p1",
		Type:                "NEW",
		ClientStatus:        models.ClientStatusApproved,
		ClientStatusComment: &comment,
		AckFilePath:         "/packets/p1_Ack.html",
	}

	query, args, err := buildInsertPacketQuery(questionBuilder, packet)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO registration (id,reg_type,"))
	assert.Len(t, args, len(packetColumns))
	assert.Equal(t, "p1", args[0])
	assert.Equal(t, &comment, args[3])
}

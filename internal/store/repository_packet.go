// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/models"
)

// packetRepository is the SQL implementation of [PacketRepository] over the
// "registration" table. Queries are built with squirrel in the placeholder
// format of the underlying [DB].
type packetRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPacketRepository constructs a [PacketRepository] backed by db.
func NewPacketRepository(db *DB, logger *logger.Logger) PacketRepository {
	return &packetRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *packetRepository) QueryByStatus(ctx context.Context, clientStatuses, serverStatuses []string) ([]models.Packet, error) {
	query, args, err := buildQueryByStatusQuery(p.builder(), clientStatuses, serverStatuses)
	if err != nil {
		p.logger.Err(err).Str("func", "packetRepository.QueryByStatus").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPackets(ctx, "packetRepository.QueryByStatus", query, args)
}

func (p *packetRepository) QueryByIDs(ctx context.Context, ids []string) ([]models.Packet, error) {
	if len(ids) == 0 {
		return []models.Packet{}, nil
	}

	query, args, err := buildQueryByIDsQuery(p.builder(), ids)
	if err != nil {
		p.logger.Err(err).Str("func", "packetRepository.QueryByIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPackets(ctx, "packetRepository.QueryByIDs", query, args)
}

func (p *packetRepository) GetByID(ctx context.Context, clientStatus, id string) (models.Packet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetByIDQuery(p.builder(), clientStatus, id)
	if err != nil {
		log.Err(err).Str("func", "packetRepository.GetByID").Str("packet_id", id).Msg("failed to build query")
		return models.Packet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	packet, err := scanPacket(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Packet{}, ErrPacketNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "packetRepository.GetByID").
			Str("packet_id", id).
			Bool("retryable", p.IsRetryable(err)).
			Msg("failed to get packet")
		return models.Packet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return packet, nil
}

func (p *packetRepository) UpdateStatus(ctx context.Context, id, clientStatus string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStatusQuery(p.builder(), id, clientStatus, p.now())
	if err != nil {
		log.Err(err).Str("func", "packetRepository.UpdateStatus").Str("packet_id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "packetRepository.UpdateStatus").
			Str("packet_id", id).
			Str("client_status", clientStatus).
			Bool("retryable", p.IsRetryable(err)).
			Msg("failed to update packet status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPacketNotFound
	}

	log.Debug().
		Str("func", "packetRepository.UpdateStatus").
		Str("packet_id", id).
		Str("client_status", clientStatus).
		Msg("packet status updated")
	return nil
}

func (p *packetRepository) SavePackets(ctx context.Context, packets ...models.Packet) error {
	log := logger.FromContext(ctx)

	if len(packets) == 0 {
		return nil
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "packetRepository.SavePackets").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, packet := range packets {
		if packet.CreatedAt.IsZero() {
			packet.CreatedAt = p.now()
		}

		query, args, buildErr := buildInsertPacketQuery(p.builder(), packet)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "packetRepository.SavePackets").
				Int("index", i).
				Str("packet_id", packet.ID).
				Bool("retryable", p.IsRetryable(execErr)).
				Msg("failed to insert packet")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: %s", ErrPacketNotSaved, packet.ID)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "packetRepository.SavePackets").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (p *packetRepository) queryPackets(ctx context.Context, fn, query string, args []any) ([]models.Packet, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Bool("retryable", p.IsRetryable(err)).
			Msg("failed to execute query for packets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	packets := make([]models.Packet, 0, 16)
	for rows.Next() {
		packet, scanErr := scanPacket(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan packet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		packets = append(packets, packet)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return packets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPacket(row rowScanner) (models.Packet, error) {
	var packet models.Packet

	err := row.Scan(
		&packet.ID,
		&packet.Type,
		&packet.ClientStatus,
		&packet.ClientStatusComment,
		&packet.ClientStatusTimestamp,
		&packet.ServerStatus,
		&packet.ServerStatusTimestamp,
		&packet.AdditionalInfo,
		&packet.AckFilePath,
		&packet.CreatedAt,
		&packet.UpdatedAt,
	)

	return packet, err
}

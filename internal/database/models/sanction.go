package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/database/dbretry"
	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
)

// pgUniqueViolation is the PostgreSQL error class for unique constraint violations.
const pgUniqueViolation = "23505"

// SanctionModel handles database operations for sanction records.
type SanctionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSanction creates a new sanction model instance.
func NewSanction(db *bun.DB, logger *zap.Logger) *SanctionModel {
	return &SanctionModel{
		db:     db,
		logger: logger.Named("db_sanction"),
	}
}

// Insert writes a new sanction record. The partial unique index on active
// bans turns a duplicate into types.ErrDuplicateActiveBan, so concurrent ban
// issuance resolves to exactly one winner without application-level locking.
func (m *SanctionModel) Insert(ctx context.Context, record *types.SanctionRecord) error {
	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().Model(record).Exec(ctx)
		if err != nil {
			var pgerr *pgdriver.Error
			if errors.As(err, &pgerr) && pgerr.Field('C') == pgUniqueViolation {
				return types.ErrDuplicateActiveBan
			}

			return fmt.Errorf("failed to insert sanction record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("Inserted sanction record",
		zap.String("recordID", record.ID.String()),
		zap.String("guildID", record.GuildID),
		zap.String("userID", record.UserID),
		zap.String("kind", record.Kind.String()))

	return nil
}

// Get retrieves a sanction record by ID.
func (m *SanctionModel) Get(ctx context.Context, id uuid.UUID) (*types.SanctionRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SanctionRecord, error) {
		var record types.SanctionRecord

		err := m.db.NewSelect().
			Model(&record).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSanctionNotFound
			}

			return nil, fmt.Errorf("failed to get sanction record: %w", err)
		}

		return &record, nil
	})
}

// ListActiveByGuild retrieves every ban, mute and timeout in the guild whose
// persisted status is active. Time-based expiry is applied by the caller at
// read time and never written back here.
func (m *SanctionModel) ListActiveByGuild(ctx context.Context, guildID string) ([]*types.SanctionRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SanctionRecord, error) {
		var records []*types.SanctionRecord

		err := m.db.NewSelect().
			Model(&records).
			Where("guild_id = ?", guildID).
			Where("status = ?", enum.SanctionStatusActive).
			Where("kind IN (?)", bun.In([]enum.SanctionKind{
				enum.SanctionKindBan,
				enum.SanctionKindMute,
				enum.SanctionKindTimeout,
			})).
			Order("issued_at DESC", "id DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active sanctions: %w", err)
		}

		return records, nil
	})
}

// ListByGuildUser retrieves the full audit trail for a user in a guild,
// forward and reversal records alike, most recent first.
func (m *SanctionModel) ListByGuildUser(ctx context.Context, guildID, userID string) ([]*types.SanctionRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SanctionRecord, error) {
		var records []*types.SanctionRecord

		err := m.db.NewSelect().
			Model(&records).
			Where("guild_id = ?", guildID).
			Where("user_id = ?", userID).
			Order("issued_at DESC", "id DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sanction history: %w", err)
		}

		return records, nil
	})
}

// Reverse persists the reversal record and flips the original to reversed in
// a single transaction. The reversal row is written first: if the transaction
// ever has to be split, a stray reversal record is recoverable while a
// flipped original with no reversal record is not. The status guard on the
// update turns a racing double-reversal into types.ErrSanctionNotActive.
func (m *SanctionModel) Reverse(ctx context.Context, original, reversal *types.SanctionRecord) error {
	err := dbretry.Transaction(ctx, m.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(reversal).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert reversal record: %w", err)
		}

		result, err := tx.NewUpdate().
			Model((*types.SanctionRecord)(nil)).
			Set("status = ?", enum.SanctionStatusReversed).
			Set("related_record_id = ?", reversal.ID).
			Where("id = ?", original.ID).
			Where("status = ?", enum.SanctionStatusActive).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark sanction reversed: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check reversal update: %w", err)
		}

		if affected == 0 {
			return types.ErrSanctionNotActive
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Keep the in-memory original consistent with what was just persisted.
	original.Status = enum.SanctionStatusReversed
	original.RelatedRecordID = &reversal.ID

	m.logger.Debug("Reversed sanction record",
		zap.String("recordID", original.ID.String()),
		zap.String("reversalID", reversal.ID.String()),
		zap.String("guildID", original.GuildID),
		zap.String("userID", original.UserID))

	return nil
}

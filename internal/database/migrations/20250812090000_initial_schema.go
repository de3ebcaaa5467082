package migrations

import (
	"context"
	"fmt"

	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*types.SanctionRecord)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create sanction_records table: %w", err)
		}

		_, err = db.NewRaw(`
			-- Audit trail lookups per user
			CREATE INDEX IF NOT EXISTS idx_sanction_records_guild_user
			ON sanction_records (guild_id, user_id, issued_at DESC);

			-- Active-sanctions view per guild
			CREATE INDEX IF NOT EXISTS idx_sanction_records_guild_status_kind
			ON sanction_records (guild_id, status, kind);
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		// Concurrent ban issuance for the same user must resolve to exactly
		// one active record; the partial unique index is the conditional
		// write that enforces it.
		_, err = db.NewRaw(fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_sanction_records_one_active_ban
			ON sanction_records (guild_id, user_id)
			WHERE kind = %d AND status = %d;
		`, enum.SanctionKindBan, enum.SanctionStatusActive)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create active ban index: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_sanction_records_one_active_ban;
			DROP INDEX IF EXISTS idx_sanction_records_guild_status_kind;
			DROP INDEX IF EXISTS idx_sanction_records_guild_user;
			DROP TABLE IF EXISTS sanction_records;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop sanction schema: %w", err)
		}

		return nil
	})
}

package moderation

import (
	"context"

	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/database/types"
)

// SanctionStore persists sanction records. The PostgreSQL-backed
// implementation lives in internal/database/models.
type SanctionStore interface {
	// Insert writes a new record. It returns types.ErrDuplicateActiveBan when
	// the record is a ban and the user already has an active one in the guild.
	Insert(ctx context.Context, record *types.SanctionRecord) error

	// Get loads a record by ID, returning types.ErrSanctionNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*types.SanctionRecord, error)

	// ListActiveByGuild returns every ban, mute and timeout in the guild whose
	// persisted status is still active. Time-based expiry is not applied here.
	ListActiveByGuild(ctx context.Context, guildID string) ([]*types.SanctionRecord, error)

	// ListByGuildUser returns the full audit trail for a user in a guild,
	// forward and reversal records alike, most recent first.
	ListByGuildUser(ctx context.Context, guildID, userID string) ([]*types.SanctionRecord, error)

	// Reverse persists the reversal record and flips the original to reversed
	// as one transaction. The reversal row must be written before the status
	// flip: a stray reversal record is a recoverable inconsistency, an
	// un-flipped original with no reversal record is not.
	Reverse(ctx context.Context, original, reversal *types.SanctionRecord) error
}

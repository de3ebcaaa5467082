package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/database/types/enum"
)

var (
	// ErrSanctionNotFound is returned when no sanction record exists for the given ID.
	ErrSanctionNotFound = errors.New("sanction record not found")
	// ErrDuplicateActiveBan is returned when inserting a ban for a user who
	// already has an unreversed ban in the same guild.
	ErrDuplicateActiveBan = errors.New("user already has an active ban in this guild")
	// ErrSanctionNotActive is returned when a reversal races another reversal
	// and the original row is no longer active by the time the update runs.
	ErrSanctionNotActive = errors.New("sanction record is no longer active")
)

// SanctionRecord is the authoritative audit entry for a moderation action.
// Rows are immutable once written except for the Active -> Reversed transition,
// which also links the original to its reversal record.
type SanctionRecord struct {
	ID          uuid.UUID         `bun:",pk,type:uuid"`
	GuildID     string            `bun:",notnull"` // Discord guild snowflake
	UserID      string            `bun:",notnull"` // Target user snowflake
	ModeratorID string            `bun:",notnull"` // Issuing moderator snowflake
	Kind        enum.SanctionKind `bun:",notnull"`
	Reason      string            `bun:",type:text,notnull"`
	// Duration in seconds for mutes and timeouts; null for every other kind.
	DurationSeconds *int64     `bun:",nullzero"`
	IssuedAt        time.Time  `bun:",notnull"`
	ExpiresAt       *time.Time `bun:",nullzero"` // IssuedAt + DurationSeconds for time-boxed kinds
	// Whether the enforcement call against Discord succeeded. A false value
	// never blocks persistence; failures must stay reviewable by staff.
	EnforcementSucceeded bool                `bun:",notnull"`
	EnforcementError     string              `bun:",type:text"`
	Status               enum.SanctionStatus `bun:",notnull"`
	// For reversal records, the original sanction; for reversed originals,
	// the reversal record.
	RelatedRecordID *uuid.UUID `bun:",nullzero,type:uuid"`
}

// IsExpired checks if a time-boxed sanction has passed its expiry at the given time.
func (r *SanctionRecord) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}

// IsPermanent checks if the sanction has no computed expiry.
func (r *SanctionRecord) IsPermanent() bool {
	return r.ExpiresAt == nil
}

// IsReversed checks if the sanction was undone by an explicit reversal.
func (r *SanctionRecord) IsReversed() bool {
	return r.Status == enum.SanctionStatusReversed
}

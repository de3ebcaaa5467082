package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	"go.uber.org/zap"
)

// DefaultReversalReason is recorded when a reversal request omits a reason.
const DefaultReversalReason = "Removed via dashboard"

// Engine orchestrates validation, enforcement, persistence and reversal of
// moderation sanctions. It is stateless between calls; all durable state
// lives in the sanction store, and the gateway is best effort.
type Engine struct {
	store   SanctionStore
	gateway EnforcementGateway
	logger  *zap.Logger
	now     func() time.Time
}

// NewEngine creates a new sanction engine.
func NewEngine(store SanctionStore, gateway EnforcementGateway, logger *zap.Logger) *Engine {
	return &Engine{
		store:   store,
		gateway: gateway,
		logger:  logger.Named("sanction_engine"),
		now:     time.Now,
	}
}

// Issue validates a punish request, applies it against the platform and
// persists the audit record. Enforcement failure never blocks persistence:
// the outcome is captured on the record and surfaced to the caller through
// EnforcementSucceeded, so "we tried and failed" stays distinguishable from
// "we never tried".
func (e *Engine) Issue(ctx context.Context, req SanctionRequest) (*types.SanctionRecord, error) {
	validated, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	outcome := e.gateway.Apply(ctx, validated.GuildID, validated.UserID, validated.Kind, EnforcementParams{
		Reason:          validated.Reason,
		DurationSeconds: validated.DurationSeconds,
	})

	issuedAt := e.now().UTC()

	record := &types.SanctionRecord{
		ID:                   uuid.New(),
		GuildID:              validated.GuildID,
		UserID:               validated.UserID,
		ModeratorID:          validated.ModeratorID,
		Kind:                 validated.Kind,
		Reason:               validated.Reason,
		IssuedAt:             issuedAt,
		EnforcementSucceeded: outcome.Succeeded,
		EnforcementError:     outcome.ErrorMessage,
		Status:               enum.SanctionStatusRecorded,
	}

	if validated.Kind.IsReversible() {
		record.Status = enum.SanctionStatusActive
	}

	if validated.Kind.IsTimeBoxed() {
		duration := validated.DurationSeconds
		expiresAt := issuedAt.Add(time.Duration(duration) * time.Second)
		record.DurationSeconds = &duration
		record.ExpiresAt = &expiresAt
	}

	if err := e.store.Insert(ctx, record); err != nil {
		if errors.Is(err, types.ErrDuplicateActiveBan) {
			return nil, &ConflictError{
				Message: fmt.Sprintf("user %s already has an active ban in guild %s", validated.UserID, validated.GuildID),
			}
		}

		return nil, fmt.Errorf("failed to persist sanction record: %w", err)
	}

	if outcome.Succeeded {
		e.logger.Info("Issued sanction",
			zap.String("recordID", record.ID.String()),
			zap.String("guildID", record.GuildID),
			zap.String("userID", record.UserID),
			zap.String("kind", record.Kind.String()))
	} else {
		e.logger.Warn("Recorded sanction with failed enforcement",
			zap.String("recordID", record.ID.String()),
			zap.String("guildID", record.GuildID),
			zap.String("userID", record.UserID),
			zap.String("kind", record.Kind.String()),
			zap.String("enforcementError", outcome.ErrorMessage))
	}

	return record, nil
}

// ListActive returns a fresh snapshot of the guild's sanctions that are still
// in effect. Time-boxed records past their expiry are filtered out at read
// time without mutating storage; no background process performs that write.
func (e *Engine) ListActive(ctx context.Context, guildID string) ([]*types.SanctionRecord, error) {
	candidates, err := e.store.ListActiveByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sanctions: %w", err)
	}

	now := e.now()

	active := make([]*types.SanctionRecord, 0, len(candidates))
	for _, record := range candidates {
		if EvaluateExpiry(record, now) == enum.SanctionStatusActive {
			active = append(active, record)
		}
	}

	return active, nil
}

// History returns the complete audit trail for a user in a guild, forward and
// reversal records alike, most recent first. Nothing is filtered by status.
func (e *Engine) History(ctx context.Context, guildID, userID string) ([]*types.SanctionRecord, error) {
	records, err := e.store.ListByGuildUser(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sanction history: %w", err)
	}

	return records, nil
}

// Reverse undoes an active ban, mute or timeout. It revokes enforcement at
// the gateway, writes a linked reversal record and flips the original to
// reversed. State checks run before the gateway call, so reversing an
// already-reversed sanction never reaches the platform.
func (e *Engine) Reverse(ctx context.Context, recordID uuid.UUID, moderatorID, reason string) (*types.SanctionRecord, error) {
	moderatorID = strings.TrimSpace(moderatorID)
	reason = strings.TrimSpace(reason)

	if moderatorID == "" {
		return nil, &ValidationError{Violations: []FieldViolation{
			{Field: "moderatorId", Reason: "must not be empty"},
		}}
	}

	original, err := e.store.Get(ctx, recordID)
	if err != nil {
		if errors.Is(err, types.ErrSanctionNotFound) {
			return nil, &NotFoundError{RecordID: recordID}
		}

		return nil, fmt.Errorf("failed to load sanction record: %w", err)
	}

	reversalKind, ok := original.Kind.ReversalKind()
	if !ok {
		return nil, &InvalidStateError{
			Message: fmt.Sprintf("%s sanctions cannot be reversed", original.Kind),
		}
	}

	if original.Status != enum.SanctionStatusActive {
		return nil, &InvalidStateError{
			Message: fmt.Sprintf("sanction %s is %s, not active", original.ID, original.Status),
		}
	}

	outcome := e.gateway.Revoke(ctx, original.GuildID, original.UserID, original.Kind)

	if reason == "" {
		reason = DefaultReversalReason
	}

	reversal := &types.SanctionRecord{
		ID:                   uuid.New(),
		GuildID:              original.GuildID,
		UserID:               original.UserID,
		ModeratorID:          moderatorID,
		Kind:                 reversalKind,
		Reason:               reason,
		IssuedAt:             e.now().UTC(),
		EnforcementSucceeded: outcome.Succeeded,
		EnforcementError:     outcome.ErrorMessage,
		Status:               enum.SanctionStatusRecorded,
		RelatedRecordID:      &original.ID,
	}

	if err := e.store.Reverse(ctx, original, reversal); err != nil {
		if errors.Is(err, types.ErrSanctionNotActive) {
			// Lost a race against a concurrent reversal of the same record.
			return nil, &InvalidStateError{
				Message: fmt.Sprintf("sanction %s was already reversed", original.ID),
			}
		}

		return nil, fmt.Errorf("failed to persist reversal: %w", err)
	}

	e.logger.Info("Reversed sanction",
		zap.String("recordID", original.ID.String()),
		zap.String("reversalID", reversal.ID.String()),
		zap.String("guildID", original.GuildID),
		zap.String("userID", original.UserID),
		zap.String("kind", original.Kind.String()),
		zap.Bool("enforcementSucceeded", outcome.Succeeded))

	return reversal, nil
}

package moderation

import (
	"context"

	"github.com/moddeck/moddeck/internal/database/types/enum"
)

// EnforcementOutcome captures the result of an enforcement call against the
// platform. Failures are data, not errors: the engine records them on the
// sanction so staff can review and retry enforcement separately.
type EnforcementOutcome struct {
	Succeeded    bool
	ErrorMessage string
}

// EnforcementParams carries the kind-specific inputs of an enforcement call.
type EnforcementParams struct {
	Reason          string
	DurationSeconds int64
}

// EnforcementGateway applies and revokes sanctions against the bot platform.
// Calls are best effort and may fail independently of the audit store, for
// reasons unrelated to request validity: platform unreachable, target not a
// guild member, missing bot permission.
type EnforcementGateway interface {
	Apply(ctx context.Context, guildID, userID string, kind enum.SanctionKind, params EnforcementParams) EnforcementOutcome
	Revoke(ctx context.Context, guildID, userID string, kind enum.SanctionKind) EnforcementOutcome
}

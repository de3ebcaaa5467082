package moderation

import (
	"fmt"
	"strings"

	"github.com/moddeck/moddeck/internal/database/types/enum"
)

// DefaultWarnReason is recorded when a warning is issued without a reason.
const DefaultWarnReason = "No reason provided"

// SanctionRequest is a moderator's intent to sanction a user.
type SanctionRequest struct {
	GuildID     string
	UserID      string
	ModeratorID string
	Kind        enum.SanctionKind
	Reason      string
	// Duration in seconds for mutes and timeouts. Zero means absent.
	DurationSeconds int64
}

// ValidateRequest checks the request shape and kind-specific invariants,
// collecting every violation instead of stopping at the first. On success it
// returns a normalized copy: identifiers and reason trimmed, and an empty
// warn reason coerced to DefaultWarnReason.
func ValidateRequest(req SanctionRequest) (SanctionRequest, error) {
	var violations []FieldViolation

	req.GuildID = strings.TrimSpace(req.GuildID)
	req.UserID = strings.TrimSpace(req.UserID)
	req.ModeratorID = strings.TrimSpace(req.ModeratorID)
	req.Reason = strings.TrimSpace(req.Reason)

	if req.GuildID == "" {
		violations = append(violations, FieldViolation{Field: "guildId", Reason: "must not be empty"})
	}

	if req.UserID == "" {
		violations = append(violations, FieldViolation{Field: "userId", Reason: "must not be empty"})
	}

	if req.ModeratorID == "" {
		violations = append(violations, FieldViolation{Field: "moderatorId", Reason: "must not be empty"})
	}

	switch {
	case !req.Kind.IsASanctionKind():
		violations = append(violations, FieldViolation{Field: "kind", Reason: "unknown sanction kind"})
	case !req.Kind.IsForward():
		violations = append(violations, FieldViolation{
			Field:  "kind",
			Reason: "reversal kinds cannot be issued directly; use the reverse operation",
		})
	default:
		violations = append(violations, validateKindRules(&req)...)
	}

	if len(violations) > 0 {
		return req, &ValidationError{Violations: violations}
	}

	return req, nil
}

// validateKindRules applies the reason and duration rules for a forward kind.
// The request may be normalized in place.
func validateKindRules(req *SanctionRequest) []FieldViolation {
	var violations []FieldViolation

	if req.Reason == "" {
		if req.Kind == enum.SanctionKindWarn {
			req.Reason = DefaultWarnReason
		} else {
			violations = append(violations, FieldViolation{Field: "reason", Reason: "must not be empty"})
		}
	}

	if req.Kind.IsTimeBoxed() {
		if req.DurationSeconds <= 0 {
			violations = append(violations, FieldViolation{
				Field:  "durationSeconds",
				Reason: fmt.Sprintf("must be a positive number of seconds for %s", req.Kind),
			})
		}
	} else if req.DurationSeconds != 0 {
		// Rejecting stray durations prevents silent misuse, such as a "ban
		// for 60 minutes" that would never expire.
		violations = append(violations, FieldViolation{
			Field:  "durationSeconds",
			Reason: fmt.Sprintf("must not be set for %s", req.Kind),
		})
	}

	return violations
}

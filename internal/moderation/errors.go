package moderation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldViolation describes a single invalid field in a punish request.
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError aggregates every violation found in a request so callers
// can report all problems at once instead of fixing them one at a time.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}

	return "invalid sanction request: " + strings.Join(parts, "; ")
}

// ConflictError signals that persisting the sanction would violate a
// uniqueness invariant, such as a second active ban for the same user.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError signals that no sanction record exists for the given ID.
type NotFoundError struct {
	RecordID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sanction record %s not found", e.RecordID)
}

// InvalidStateError signals a reversal attempt against a record that is not
// currently active or whose kind cannot be reversed.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

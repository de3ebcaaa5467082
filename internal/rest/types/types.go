package types

import "time"

// SanctionKind is the wire representation of a sanction kind.
type SanctionKind string

const (
	SanctionKindWarn      SanctionKind = "warn"
	SanctionKindMute      SanctionKind = "mute"
	SanctionKindTimeout   SanctionKind = "timeout"
	SanctionKindKick      SanctionKind = "kick"
	SanctionKindBan       SanctionKind = "ban"
	SanctionKindUnMute    SanctionKind = "unmute"
	SanctionKindUnTimeout SanctionKind = "untimeout"
	SanctionKindUnBan     SanctionKind = "unban"
)

// SanctionStatus is the wire representation of a sanction status.
type SanctionStatus string

const (
	SanctionStatusRecorded SanctionStatus = "recorded"
	SanctionStatusActive   SanctionStatus = "active"
	SanctionStatusReversed SanctionStatus = "reversed"
	SanctionStatusExpired  SanctionStatus = "expired"
)

// PunishRequest is the body of a punish call.
type PunishRequest struct {
	GuildID         string `json:"guildId"`
	UserID          string `json:"userId"`
	ModeratorID     string `json:"moderatorId"`
	Kind            string `json:"kind"`
	Reason          string `json:"reason"`
	DurationSeconds int64  `json:"durationSeconds,omitempty"`
}

// ReverseRequest is the body of a reverse call.
type ReverseRequest struct {
	ModeratorID string `json:"moderatorId"`
	Reason      string `json:"reason,omitempty"`
}

// SanctionRecord is the wire representation of a sanction audit record.
type SanctionRecord struct {
	ID                   string         `json:"id"`
	GuildID              string         `json:"guildId"`
	UserID               string         `json:"userId"`
	ModeratorID          string         `json:"moderatorId"`
	Kind                 SanctionKind   `json:"kind"`
	Reason               string         `json:"reason"`
	DurationSeconds      *int64         `json:"durationSeconds,omitempty"`
	IssuedAt             time.Time      `json:"issuedAt"`
	ExpiresAt            *time.Time     `json:"expiresAt,omitempty"`
	EnforcementSucceeded bool           `json:"enforcementSucceeded"`
	EnforcementError     string         `json:"enforcementError,omitempty"`
	Status               SanctionStatus `json:"status"`
	RelatedRecordID      *string        `json:"relatedRecordId,omitempty"`
}

// SanctionResponse is returned by punish and reverse calls. The success flag
// reflects enforcement, not persistence: the record is written either way.
type SanctionResponse struct {
	EnforcementSucceeded bool           `json:"enforcementSucceeded"`
	Record               SanctionRecord `json:"record"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrorResponse lists every violation in a rejected request.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Package convert maps between database types and REST API types.
package convert

import (
	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	restTypes "github.com/moddeck/moddeck/internal/rest/types"
)

// ParseSanctionKind parses a wire kind string. The boolean is false for
// unknown kinds; callers pass the invalid value through so the validator can
// report it alongside any other violations.
func ParseSanctionKind(s string) (enum.SanctionKind, bool) {
	kind, err := enum.SanctionKindString(s)
	if err != nil {
		return enum.SanctionKind(-1), false
	}

	return kind, true
}

// SanctionKind converts a database kind to its wire representation.
func SanctionKind(kind enum.SanctionKind) restTypes.SanctionKind {
	switch kind {
	case enum.SanctionKindWarn:
		return restTypes.SanctionKindWarn
	case enum.SanctionKindMute:
		return restTypes.SanctionKindMute
	case enum.SanctionKindTimeout:
		return restTypes.SanctionKindTimeout
	case enum.SanctionKindKick:
		return restTypes.SanctionKindKick
	case enum.SanctionKindBan:
		return restTypes.SanctionKindBan
	case enum.SanctionKindUnMute:
		return restTypes.SanctionKindUnMute
	case enum.SanctionKindUnTimeout:
		return restTypes.SanctionKindUnTimeout
	case enum.SanctionKindUnBan:
		return restTypes.SanctionKindUnBan
	default:
		return restTypes.SanctionKind(kind.String())
	}
}

// SanctionStatus converts a database status to its wire representation.
func SanctionStatus(status enum.SanctionStatus) restTypes.SanctionStatus {
	switch status {
	case enum.SanctionStatusRecorded:
		return restTypes.SanctionStatusRecorded
	case enum.SanctionStatusActive:
		return restTypes.SanctionStatusActive
	case enum.SanctionStatusReversed:
		return restTypes.SanctionStatusReversed
	case enum.SanctionStatusExpired:
		return restTypes.SanctionStatusExpired
	default:
		return restTypes.SanctionStatus(status.String())
	}
}

// SanctionRecord converts a database record to its wire representation.
func SanctionRecord(record *types.SanctionRecord) restTypes.SanctionRecord {
	out := restTypes.SanctionRecord{
		ID:                   record.ID.String(),
		GuildID:              record.GuildID,
		UserID:               record.UserID,
		ModeratorID:          record.ModeratorID,
		Kind:                 SanctionKind(record.Kind),
		Reason:               record.Reason,
		DurationSeconds:      record.DurationSeconds,
		IssuedAt:             record.IssuedAt,
		ExpiresAt:            record.ExpiresAt,
		EnforcementSucceeded: record.EnforcementSucceeded,
		EnforcementError:     record.EnforcementError,
		Status:               SanctionStatus(record.Status),
	}

	if record.RelatedRecordID != nil {
		related := record.RelatedRecordID.String()
		out.RelatedRecordID = &related
	}

	return out
}

// SanctionRecords converts a slice of database records.
func SanctionRecords(records []*types.SanctionRecord) []restTypes.SanctionRecord {
	out := make([]restTypes.SanctionRecord, len(records))
	for i, record := range records {
		out[i] = SanctionRecord(record)
	}

	return out
}

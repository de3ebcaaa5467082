package enum

// SanctionKind represents the type of moderation action taken against a user.
//
//go:generate go tool enumer -type=SanctionKind -trimprefix=SanctionKind
type SanctionKind int

const (
	// SanctionKindWarn records a warning with no platform enforcement beyond a DM.
	SanctionKindWarn SanctionKind = iota
	// SanctionKindMute assigns the configured muted role for a fixed duration.
	SanctionKindMute
	// SanctionKindTimeout applies a native Discord communication timeout.
	SanctionKindTimeout
	// SanctionKindKick removes the member from the guild.
	SanctionKindKick
	// SanctionKindBan bans the user until explicitly reversed.
	SanctionKindBan
	// SanctionKindUnMute is the reversal of a mute.
	SanctionKindUnMute
	// SanctionKindUnTimeout is the reversal of a timeout.
	SanctionKindUnTimeout
	// SanctionKindUnBan is the reversal of a ban.
	SanctionKindUnBan
)

// IsForward checks if the kind is a moderator-initiated sanction rather than a reversal.
func (k SanctionKind) IsForward() bool {
	switch k {
	case SanctionKindWarn, SanctionKindMute, SanctionKindTimeout, SanctionKindKick, SanctionKindBan:
		return true
	case SanctionKindUnMute, SanctionKindUnTimeout, SanctionKindUnBan:
		return false
	default:
		return false
	}
}

// IsTimeBoxed checks if the kind carries a duration and expires on its own.
func (k SanctionKind) IsTimeBoxed() bool {
	return k == SanctionKindMute || k == SanctionKindTimeout
}

// IsReversible checks if the kind supports an explicit reversal.
// Warns and kicks are one-shot and cannot be undone.
func (k SanctionKind) IsReversible() bool {
	switch k {
	case SanctionKindMute, SanctionKindTimeout, SanctionKindBan:
		return true
	case SanctionKindWarn, SanctionKindKick, SanctionKindUnMute, SanctionKindUnTimeout, SanctionKindUnBan:
		return false
	default:
		return false
	}
}

// ReversalKind returns the reversal kind for a reversible forward kind.
// The boolean is false for kinds that cannot be reversed.
func (k SanctionKind) ReversalKind() (SanctionKind, bool) {
	switch k {
	case SanctionKindMute:
		return SanctionKindUnMute, true
	case SanctionKindTimeout:
		return SanctionKindUnTimeout, true
	case SanctionKindBan:
		return SanctionKindUnBan, true
	case SanctionKindWarn, SanctionKindKick, SanctionKindUnMute, SanctionKindUnTimeout, SanctionKindUnBan:
		return k, false
	default:
		return k, false
	}
}

// SanctionStatus represents the lifecycle state of a sanction record.
// Expired is only ever computed at read time and never persisted.
//
//go:generate go tool enumer -type=SanctionStatus -trimprefix=SanctionStatus
type SanctionStatus int

const (
	// SanctionStatusRecorded is the terminal state for one-shot kinds and reversal records.
	SanctionStatusRecorded SanctionStatus = iota
	// SanctionStatusActive marks a ban, mute or timeout that has not been reversed.
	SanctionStatusActive
	// SanctionStatusReversed marks a sanction undone by an explicit reversal record.
	SanctionStatusReversed
	// SanctionStatusExpired is the read-time projection for time-boxed sanctions past expiry.
	SanctionStatusExpired
)

package moderation

import (
	"fmt"
	"time"

	"github.com/moddeck/moddeck/internal/database/types"
	"github.com/moddeck/moddeck/internal/database/types/enum"
)

// EvaluateExpiry computes whether an active sanction is still in effect at
// the given time. Bans stay active until explicitly reversed; mutes and
// timeouts expire once their computed expiry passes. Expiry is a read-time
// projection only: the result is never written back to the store.
//
// The function is only defined for the three enforceable kinds. Any other
// kind is a programming error since ListActive filters candidates upstream.
func EvaluateExpiry(record *types.SanctionRecord, now time.Time) enum.SanctionStatus {
	switch record.Kind {
	case enum.SanctionKindBan:
		return enum.SanctionStatusActive
	case enum.SanctionKindMute, enum.SanctionKindTimeout:
		if record.IsExpired(now) {
			return enum.SanctionStatusExpired
		}

		return enum.SanctionStatusActive
	default:
		panic(fmt.Sprintf("expiry evaluated on non-enforceable kind %s", record.Kind))
	}
}

package moderation

import (
	"testing"

	"github.com/moddeck/moddeck/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		request       SanctionRequest
		wantFields    []string
		checkedResult func(t *testing.T, normalized SanctionRequest)
	}{
		{
			name: "valid ban",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindBan,
				Reason:      "spamming",
			},
		},
		{
			name: "valid mute with duration",
			request: SanctionRequest{
				GuildID:         "100",
				UserID:          "200",
				ModeratorID:     "300",
				Kind:            enum.SanctionKindMute,
				Reason:          "spamming",
				DurationSeconds: 3600,
			},
		},
		{
			name: "identifiers are trimmed",
			request: SanctionRequest{
				GuildID:     "  100  ",
				UserID:      " 200",
				ModeratorID: "300 ",
				Kind:        enum.SanctionKindKick,
				Reason:      "  raid account  ",
			},
			checkedResult: func(t *testing.T, normalized SanctionRequest) {
				t.Helper()
				assert.Equal(t, "100", normalized.GuildID)
				assert.Equal(t, "200", normalized.UserID)
				assert.Equal(t, "300", normalized.ModeratorID)
				assert.Equal(t, "raid account", normalized.Reason)
			},
		},
		{
			name: "warn without reason gets default",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindWarn,
			},
			checkedResult: func(t *testing.T, normalized SanctionRequest) {
				t.Helper()
				assert.Equal(t, DefaultWarnReason, normalized.Reason)
			},
		},
		{
			name: "whitespace-only warn reason gets default",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindWarn,
				Reason:      "   ",
			},
			checkedResult: func(t *testing.T, normalized SanctionRequest) {
				t.Helper()
				assert.Equal(t, DefaultWarnReason, normalized.Reason)
			},
		},
		{
			name: "ban without reason is rejected",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindBan,
			},
			wantFields: []string{"reason"},
		},
		{
			name: "mute without duration is rejected",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindMute,
				Reason:      "spamming",
			},
			wantFields: []string{"durationSeconds"},
		},
		{
			name: "timeout with negative duration is rejected",
			request: SanctionRequest{
				GuildID:         "100",
				UserID:          "200",
				ModeratorID:     "300",
				Kind:            enum.SanctionKindTimeout,
				Reason:          "spamming",
				DurationSeconds: -5,
			},
			wantFields: []string{"durationSeconds"},
		},
		{
			name: "ban with duration is rejected",
			request: SanctionRequest{
				GuildID:         "100",
				UserID:          "200",
				ModeratorID:     "300",
				Kind:            enum.SanctionKindBan,
				Reason:          "spamming",
				DurationSeconds: 3600,
			},
			wantFields: []string{"durationSeconds"},
		},
		{
			name: "unknown kind",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKind(-1),
				Reason:      "spamming",
			},
			wantFields: []string{"kind"},
		},
		{
			name: "reversal kind cannot be issued directly",
			request: SanctionRequest{
				GuildID:     "100",
				UserID:      "200",
				ModeratorID: "300",
				Kind:        enum.SanctionKindUnBan,
				Reason:      "spamming",
			},
			wantFields: []string{"kind"},
		},
		{
			name:       "empty request aggregates every violation",
			request:    SanctionRequest{Kind: enum.SanctionKindTimeout},
			wantFields: []string{"guildId", "userId", "moderatorId", "reason", "durationSeconds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			normalized, err := ValidateRequest(tt.request)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)

				if tt.checkedResult != nil {
					tt.checkedResult(t, normalized)
				}

				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)

			fields := make([]string, len(validationErr.Violations))
			for i, v := range validationErr.Violations {
				fields[i] = v.Field
			}

			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

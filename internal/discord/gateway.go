// Package discord binds the moderation engine's enforcement gateway to the
// Discord REST API.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
	"github.com/moddeck/moddeck/internal/database/types/enum"
	"github.com/moddeck/moddeck/internal/moderation"
	"github.com/moddeck/moddeck/internal/setup/config"
	"go.uber.org/zap"
)

// Gateway enforces sanctions against Discord. Every failure is converted into
// an EnforcementOutcome rather than an error: the engine persists the audit
// record either way, and staff review failed enforcement separately.
type Gateway struct {
	client rest.Rest
	config *config.Discord
	logger *zap.Logger
}

// NewGateway creates a gateway backed by the Discord REST API.
func NewGateway(cfg *config.Discord, logger *zap.Logger) *Gateway {
	return &Gateway{
		client: rest.New(rest.NewClient(cfg.Token)),
		config: cfg,
		logger: logger.Named("enforcement_gateway"),
	}
}

// Apply enforces a forward sanction against Discord.
func (g *Gateway) Apply(
	ctx context.Context, guildID, userID string, kind enum.SanctionKind, params moderation.EnforcementParams,
) moderation.EnforcementOutcome {
	guild, user, err := parseIDs(guildID, userID)
	if err != nil {
		return failure(err)
	}

	switch kind {
	case enum.SanctionKindWarn:
		err = g.sendWarning(ctx, user, params.Reason)
	case enum.SanctionKindMute:
		err = g.setMutedRole(ctx, guild, user, params.Reason, true)
	case enum.SanctionKindTimeout:
		until := time.Now().Add(time.Duration(params.DurationSeconds) * time.Second)
		_, err = g.client.UpdateMember(guild, user, discord.MemberUpdate{
			CommunicationDisabledUntil: json.NewNullablePtr(until),
		}, rest.WithCtx(ctx), rest.WithReason(params.Reason))
	case enum.SanctionKindKick:
		err = g.client.RemoveMember(guild, user, rest.WithCtx(ctx), rest.WithReason(params.Reason))
	case enum.SanctionKindBan:
		err = g.client.AddBan(guild, user, 0, rest.WithCtx(ctx), rest.WithReason(params.Reason))
	default:
		err = fmt.Errorf("kind %s cannot be applied", kind)
	}

	return g.outcome("apply", guildID, userID, kind, err)
}

// Revoke lifts a previously applied sanction.
func (g *Gateway) Revoke(
	ctx context.Context, guildID, userID string, kind enum.SanctionKind,
) moderation.EnforcementOutcome {
	guild, user, err := parseIDs(guildID, userID)
	if err != nil {
		return failure(err)
	}

	switch kind {
	case enum.SanctionKindMute:
		err = g.setMutedRole(ctx, guild, user, "", false)
	case enum.SanctionKindTimeout:
		_, err = g.client.UpdateMember(guild, user, discord.MemberUpdate{
			CommunicationDisabledUntil: json.NullPtr[time.Time](),
		}, rest.WithCtx(ctx))
	case enum.SanctionKindBan:
		err = g.client.DeleteBan(guild, user, rest.WithCtx(ctx))
	default:
		err = fmt.Errorf("kind %s cannot be revoked", kind)
	}

	return g.outcome("revoke", guildID, userID, kind, err)
}

// sendWarning delivers the warning as a best-effort DM. Users with closed DMs
// make this fail; the warning is still recorded.
func (g *Gateway) sendWarning(ctx context.Context, user snowflake.ID, reason string) error {
	channel, err := g.client.CreateDMChannel(user, rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = g.client.CreateMessage(channel.ID(), discord.NewMessageCreateBuilder().
		SetContentf("You have received a warning: %s", reason).
		Build(), rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to send warning DM: %w", err)
	}

	return nil
}

// setMutedRole adds or removes the guild's configured muted role.
func (g *Gateway) setMutedRole(ctx context.Context, guild, user snowflake.ID, reason string, add bool) error {
	roleID, ok := g.config.MutedRoleIDs[guild.String()]
	if !ok {
		return fmt.Errorf("no muted role configured for guild %s", guild)
	}

	role, err := snowflake.Parse(roleID)
	if err != nil {
		return fmt.Errorf("invalid muted role ID %q: %w", roleID, err)
	}

	if add {
		return g.client.AddMemberRole(guild, user, role, rest.WithCtx(ctx), rest.WithReason(reason))
	}

	return g.client.RemoveMemberRole(guild, user, role, rest.WithCtx(ctx))
}

// outcome converts an enforcement error into the outcome shape and logs it.
func (g *Gateway) outcome(
	op, guildID, userID string, kind enum.SanctionKind, err error,
) moderation.EnforcementOutcome {
	if err != nil {
		g.logger.Warn("Enforcement call failed",
			zap.String("operation", op),
			zap.String("guildID", guildID),
			zap.String("userID", userID),
			zap.String("kind", kind.String()),
			zap.Error(err))

		return failure(err)
	}

	g.logger.Debug("Enforcement call succeeded",
		zap.String("operation", op),
		zap.String("guildID", guildID),
		zap.String("userID", userID),
		zap.String("kind", kind.String()))

	return moderation.EnforcementOutcome{Succeeded: true}
}

func parseIDs(guildID, userID string) (snowflake.ID, snowflake.ID, error) {
	guild, err := snowflake.Parse(guildID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guild ID %q: %w", guildID, err)
	}

	user, err := snowflake.Parse(userID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user ID %q: %w", userID, err)
	}

	return guild, user, nil
}

func failure(err error) moderation.EnforcementOutcome {
	return moderation.EnforcementOutcome{Succeeded: false, ErrorMessage: err.Error()}
}

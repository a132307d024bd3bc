package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
	pkgdiscord "raidbot/pkg/discord"
	"raidbot/pkg/tz"
)

var _ output.RaidNotifier = (*RosterNotifier)(nil)

// messageEditor is the part of *discordgo.Session the notifier needs.
type messageEditor interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// rosterSource loads the roster of a raid.
type rosterSource interface {
	Roster(ctx context.Context, raidID uint) (*input.RosterSummary, error)
}

// RosterNotifier mirrors roster changes into the raid posts. Edits are rate
// limited to stay under the Discord per-channel limits.
type RosterNotifier struct {
	editor  messageEditor
	rosters rosterSource
	limiter *rate.Limiter
	loc     *time.Location
	log     zerolog.Logger
}

// NewRosterNotifier creates a notifier allowing perSecond edits per second.
func NewRosterNotifier(editor messageEditor, rosters rosterSource, perSecond float64, loc *time.Location, log zerolog.Logger) *RosterNotifier {
	burst := max(int(perSecond), 1)
	return &RosterNotifier{
		editor:  editor,
		rosters: rosters,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		loc:     tz.Or(loc),
		log:     log.With().Str("component", "notifier").Logger(),
	}
}

// NotifyRaid re-renders the post of raidID. Raids without a post are skipped.
func (n *RosterNotifier) NotifyRaid(ctx context.Context, raidID uint) error {
	summary, err := n.rosters.Roster(ctx, raidID)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	if !summary.Raid.HasPost() {
		return nil
	}
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildRosterEmbed(rosterView(summary, n.loc))}
	components := raidComponents(raidID)
	if _, err := n.editor.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         summary.Raid.MessageID,
		Channel:    summary.Raid.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit raid message: %w", err)
	}
	n.log.Debug().Uint("raid_id", raidID).Int("picked", len(summary.Picked)).Msg("Post du raid rafraîchi")
	return nil
}

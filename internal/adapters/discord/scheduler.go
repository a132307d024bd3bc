package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/output"
	pkgdiscord "raidbot/pkg/discord"
	"raidbot/pkg/tz"
)

// announceTimeout bounds one cycle announcement.
const announceTimeout = 30 * time.Second

// messageSender is the part of *discordgo.Session the scheduler needs.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type cycleSource interface {
	CycleWindowContaining(t time.Time) cycle.Window
}

type raidLister interface {
	RaidsInWindow(ctx context.Context, w cycle.Window) ([]entities.Raid, error)
}

// Scheduler posts the raid planning of a cycle when it opens.
type Scheduler struct {
	cron      *cron.Cron
	sender    messageSender
	cycles    cycleSource
	raids     raidLister
	t         output.T
	channelID string
	loc       *time.Location
	log       zerolog.Logger
	now       func() time.Time
}

// NewScheduler creates a Scheduler firing on every cycle boundary.
func NewScheduler(sender messageSender, cycles cycleSource, raids raidLister, t output.T, channelID string,
	weekday time.Weekday, hour int, loc *time.Location, log zerolog.Logger,
) (*Scheduler, error) {
	loc = tz.Or(loc)
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		sender:    sender,
		cycles:    cycles,
		raids:     raids,
		t:         t,
		channelID: channelID,
		loc:       loc,
		log:       log.With().Str("component", "scheduler").Logger(),
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(cycleCronSpec(weekday, hour), s.run); err != nil {
		return nil, fmt.Errorf("schedule cycle announce: %w", err)
	}
	return s, nil
}

// cycleCronSpec is the standard 5 field cron expression of a cycle boundary.
func cycleCronSpec(weekday time.Weekday, hour int) string {
	return fmt.Sprintf("0 %d * * %d", hour, int(weekday))
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("⏰ Planificateur démarré")
}

// Stop stops the cron and waits for a running announcement.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()
	if err := s.announce(ctx, s.now()); err != nil {
		s.log.Error().Err(err).Msg("❌ Annonce du cycle impossible")
	}
}

// announce posts the raids of the cycle containing now.
func (s *Scheduler) announce(ctx context.Context, now time.Time) error {
	w := s.cycles.CycleWindowContaining(now)
	raids, err := s.raids.RaidsInWindow(ctx, w)
	if err != nil {
		return fmt.Errorf("raids in window: %w", err)
	}
	content := s.t.T(s.t.DefaultLocale(), "info.cycle_announce", map[string]any{
		"Start": pkgdiscord.FormatRaidDateTime(w.Start, s.loc),
		"Count": len(raids),
	})
	if _, err := s.sender.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{pkgdiscord.BuildCycleEmbed(w, raids, s.loc)},
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send cycle announce: %w", err)
	}
	s.log.Info().Time("cycle_start", w.Start).Int("raids", len(raids)).Msg("🗓️ Cycle annoncé")
	return nil
}

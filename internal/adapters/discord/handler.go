package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
	"raidbot/pkg/tz"
)

// interactionTimeout bounds the use case calls of one interaction.
const interactionTimeout = 10 * time.Second

// Handler handles Discord interactions using use cases.
type Handler struct {
	raidUseCase      input.RaidUseCase
	signupUseCase    input.SignupUseCase
	characterUseCase input.CharacterUseCase
	t                output.T

	raidChannelID string
	roles         staffRoles
	loc           *time.Location
	log           zerolog.Logger
	now           func() time.Time
}

// HandlerConfig carries the guild specific settings of a Handler.
type HandlerConfig struct {
	RaidChannelID string
	AdminRoleID   string
	OwnerRoleID   string
	Location      *time.Location
}

// NewHandler creates a Handler.
func NewHandler(
	raidUseCase input.RaidUseCase,
	signupUseCase input.SignupUseCase,
	characterUseCase input.CharacterUseCase,
	t output.T,
	cfg HandlerConfig,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		raidUseCase:      raidUseCase,
		signupUseCase:    signupUseCase,
		characterUseCase: characterUseCase,
		t:                t,
		raidChannelID:    cfg.RaidChannelID,
		roles:            staffRoles{admin: cfg.AdminRoleID, owner: cfg.OwnerRoleID},
		loc:              tz.Or(cfg.Location),
		log:              log.With().Str("component", "discord").Logger(),
		now:              time.Now,
	}
}

// locale is the interacting user's client locale, or the bot default.
func (h *Handler) locale(i *discordgo.InteractionCreate) string {
	if i != nil && i.Locale != "" {
		return string(i.Locale)
	}
	return h.t.DefaultLocale()
}

func (h *Handler) translate(i *discordgo.InteractionCreate, key string, data map[string]any) string {
	return h.t.T(h.locale(i), key, data)
}

func (h *Handler) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), interactionTimeout)
}

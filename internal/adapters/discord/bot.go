package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot is the Discord adapter: it owns the gateway session and routes
// interactions to the Handler.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	log     zerolog.Logger
}

// NewBot wires handler to session.
func NewBot(session *discordgo.Session, handler *Handler, guildID string, log zerolog.Logger) *Bot {
	bot := &Bot{
		session: session,
		handler: handler,
		guildID: guildID,
		log:     log.With().Str("component", "bot").Logger(),
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	session.AddHandler(bot.handleInteraction)
	return bot
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("❌ Panique pendant une interaction")
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		b.routeComponent(s, i)
	}
}

func (b *Bot) routeComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, btnSignupPrefix):
		b.handler.HandleSignupButton(s, i)
	case strings.HasPrefix(customID, btnLeavePrefix):
		b.handler.HandleLeave(s, i)
	case strings.HasPrefix(customID, btnManagePrefix):
		b.handler.HandleManage(s, i)
	case strings.HasPrefix(customID, btnDeletePrefix):
		b.handler.HandleDelete(s, i)
	case customID == selectPick:
		b.handler.HandlePick(s, i)
	case customID == selectUnpick:
		b.handler.HandleUnpick(s, i)
	}
}

// Start opens the session, registers the slash commands and blocks until ctx
// is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			b.log.Warn().Err(err).Str("command", cmd.Name).Msg("⚠️ Erreur lors de l'enregistrement de la commande")
		}
	}

	b.log.Info().Msg("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	<-ctx.Done()
	b.log.Info().Msg("👋 Arrêt du bot")
	return nil
}

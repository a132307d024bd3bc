package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	pkgdiscord "raidbot/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

func interactionDisplayName(i *discordgo.InteractionCreate) string {
	if name := resolveDisplayName(i.Member); name != "" {
		return name
	}
	if i.User != nil {
		if i.User.GlobalName != "" {
			return i.User.GlobalName
		}
		return i.User.Username
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEphemeralEmbed(s *discordgo.Session, i *discordgo.Interaction, content string, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  []*discordgo.MessageEmbed{embed},
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionResponder is the part of *discordgo.Session used to answer an
// interaction in two steps.
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// deferEphemeral acknowledges i right away. Use cases that refresh raid posts
// may outlive the 3 second reply deadline.
func deferEphemeral(r interactionResponder, i *discordgo.Interaction) {
	_ = r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
}

// editReply fills in a deferred response.
func editReply(r interactionResponder, i *discordgo.Interaction, content string) {
	_, _ = r.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content})
}

// errorMessage renders err for the user. Errors without a domain code are
// logged since the user only sees a generic message.
func (h *Handler) errorMessage(i *discordgo.InteractionCreate, op string, err error) string {
	if pkgdiscord.ErrorKey(err) == "errors.generic" {
		h.log.Error().Err(err).Str("op", op).Msg("❌ Erreur inattendue")
	}
	return "❌ " + pkgdiscord.DomainErrorMessage(h.t, h.locale(i), err, h.loc)
}

func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, op string, err error) {
	respondEphemeral(s, i.Interaction, h.errorMessage(i, op, err))
}

func followupEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_, _ = s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleModalSubmit route les différents modals en fonction de leur CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch {
	case strings.HasPrefix(data.CustomID, createRaidModalPrefix):
		h.handleCreateRaidModalSubmit(s, i, data)
	case strings.HasPrefix(data.CustomID, signupModalPrefix):
		h.handleSignupModalSubmit(s, i, data)
	default:
		// Modal inconnu : on ignore silencieusement pour rester robuste.
	}
}

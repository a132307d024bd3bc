package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain/entities"
)

func formatCharacterList(chars []entities.Character) string {
	var b strings.Builder
	for idx := range chars {
		b.WriteString("• **")
		b.WriteString(chars[idx].Label())
		b.WriteString("**")
		if chars[idx].Class != "" {
			b.WriteString(" (")
			b.WriteString(chars[idx].Class)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HandleCharacterCommand handles /character add|list|remove.
func (h *Handler) HandleCharacterCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := commandOptions(sub.Options)
	userID := interactionUserID(i)

	ctx, cancel := h.opContext()
	defer cancel()

	switch sub.Name {
	case "add":
		char, err := h.characterUseCase.AddCharacter(ctx, userID, optString(opts, "name"), optString(opts, "realm"), optString(opts, "class"))
		if err != nil {
			h.respondError(s, i, "character_add", err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(i, "info.character_added", map[string]any{"Character": char.Label()}))
	case "list":
		chars, err := h.characterUseCase.ListCharacters(ctx, userID)
		if err != nil {
			h.respondError(s, i, "character_list", err)
			return
		}
		if len(chars) == 0 {
			respondEphemeral(s, i.Interaction, h.translate(i, "info.no_characters", nil))
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(i, "info.character_list", nil)+"\n"+formatCharacterList(chars))
	case "remove":
		chars, err := h.characterUseCase.ListCharacters(ctx, userID)
		if err != nil {
			h.respondError(s, i, "character_remove", err)
			return
		}
		char, err := resolveCharacter(chars, optString(opts, "character"))
		if err != nil {
			h.respondError(s, i, "character_remove", err)
			return
		}
		if err := h.characterUseCase.RemoveCharacter(ctx, userID, char.ID); err != nil {
			h.respondError(s, i, "character_remove", err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(i, "info.character_removed", map[string]any{"Character": char.Label()}))
	}
}

package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain/entities"
)

func formatPresetList(presets []entities.Preset) string {
	var b strings.Builder
	for _, p := range presets {
		fmt.Fprintf(&b, "• **%s** : %d tank(s), %d heal(s), %d DPS\n", p.Name, p.Tanks, p.Healers, p.DPS)
	}
	return b.String()
}

// HandlePresetCommand handles /preset add|list.
func (h *Handler) HandlePresetCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := commandOptions(sub.Options)

	ctx, cancel := h.opContext()
	defer cancel()

	switch sub.Name {
	case "add":
		preset := &entities.Preset{
			Name:    strings.TrimSpace(optString(opts, "name")),
			Tanks:   int(optInt(opts, "tanks")),
			Healers: int(optInt(opts, "healers")),
			DPS:     int(optInt(opts, "dps")),
		}
		if err := h.raidUseCase.CreatePreset(ctx, preset, h.actor(s, i)); err != nil {
			h.respondError(s, i, "preset_add", err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(i, "info.preset_created", map[string]any{"Name": preset.Name, "Size": preset.Size()}))
	case "list":
		presets, err := h.raidUseCase.ListPresets(ctx)
		if err != nil {
			h.respondError(s, i, "preset_list", err)
			return
		}
		if len(presets) == 0 {
			respondEphemeral(s, i.Interaction, h.translate(i, "info.no_presets", nil))
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(i, "info.preset_list", nil)+"\n"+formatPresetList(presets))
	}
}

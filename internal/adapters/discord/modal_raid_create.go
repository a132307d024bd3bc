package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/ports/input"
	pkgdiscord "raidbot/pkg/discord"
)

const (
	createRaidModalPrefix = "create_raid_modal:"

	placeholderTitle  = "Ex: Nerub'ar Palace"
	placeholderNote   = "Stratégie, prérequis, vocal..."
	placeholderDate   = "Ex: 27/03/2026 (jour/mois/année)"
	placeholderTime   = "Ex: 20:30"
	placeholderBosses = "Ex: 8"
)

// raidModalID encodes the options chosen on /raid into the modal custom ID.
func raidModalID(difficulty domain.Difficulty, loot domain.LootMode, presetID uint) string {
	return fmt.Sprintf("%s%s:%s:%d", createRaidModalPrefix, difficulty, loot, presetID)
}

func parseRaidModalID(customID string) (domain.Difficulty, domain.LootMode, *uint, error) {
	rest, ok := strings.CutPrefix(customID, createRaidModalPrefix)
	if !ok {
		return "", "", nil, fmt.Errorf("unexpected modal %q", customID)
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return "", "", nil, fmt.Errorf("unexpected modal %q", customID)
	}
	difficulty, err := domain.ParseDifficulty(parts[0])
	if err != nil {
		return "", "", nil, err
	}
	loot, err := domain.ParseLootMode(parts[1])
	if err != nil {
		return "", "", nil, err
	}
	id, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return "", "", nil, domain.ErrInvalidPreset
	}
	if id == 0 {
		return difficulty, loot, nil, nil
	}
	presetID := uint(id)
	return difficulty, loot, &presetID, nil
}

// HandleRaidCommand validates the /raid options and opens the creation modal.
func (h *Handler) HandleRaidCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := commandOptions(data.Options)
	difficulty, err := domain.ParseDifficulty(optString(opts, "difficulty"))
	if err != nil {
		h.respondError(s, i, "raid", err)
		return
	}
	loot, err := domain.ParseLootMode(optString(opts, "loot"))
	if err != nil {
		h.respondError(s, i, "raid", err)
		return
	}
	var presetID uint
	if name := strings.TrimSpace(optString(opts, "preset")); name != "" {
		ctx, cancel := h.opContext()
		defer cancel()
		preset, err := h.raidUseCase.FindPreset(ctx, name)
		if err != nil {
			h.respondError(s, i, "raid", err)
			return
		}
		presetID = preset.ID
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: raidModalID(difficulty, loot, presetID),
			Title:    h.translate(i, "ui.raid_modal_title", nil),
			Components: []discordgo.MessageComponent{
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "title", Label: "Titre", Style: discordgo.TextInputShort, Required: true, MaxLength: 80, Placeholder: placeholderTitle}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "note", Label: "Note", Style: discordgo.TextInputParagraph, Required: false, MaxLength: 1000, Placeholder: placeholderNote}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "date", Label: "Date", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderDate}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "time", Label: "Heure", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderTime}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "bosses", Label: "Nombre de boss", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderBosses}),
			},
		},
	})
}

// handleCreateRaidModalSubmit creates the raid and publishes its roster post.
func (h *Handler) handleCreateRaidModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	difficulty, loot, presetID, err := parseRaidModalID(data.CustomID)
	if err != nil {
		h.respondError(s, i, "create raid", err)
		return
	}
	values := pkgdiscord.ModalValues(data)

	startsAt, err := pkgdiscord.ParseRaidDateTime(values["date"], values["time"], h.loc, h.now())
	if err != nil {
		h.respondError(s, i, "create raid", err)
		return
	}
	bosses, err := strconv.Atoi(strings.TrimSpace(values["bosses"]))
	if err != nil {
		h.respondError(s, i, "create raid", domain.ErrInvalidBossCount)
		return
	}

	ctx, cancel := h.opContext()
	defer cancel()
	raid, err := h.raidUseCase.CreateRaid(ctx, input.CreateRaidInput{
		LeadID:     interactionUserID(i),
		Title:      values["title"],
		Note:       values["note"],
		Difficulty: difficulty,
		LootMode:   loot,
		BossCount:  bosses,
		StartsAt:   startsAt,
		PresetID:   presetID,
	})
	if err != nil {
		h.respondError(s, i, "create raid", err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(i, "info.raid_created", map[string]any{
		"Title": raid.Title,
		"ID":    raid.ID,
	}))

	if err := h.publishRaid(ctx, s, raid); err != nil {
		h.log.Error().Err(err).Uint("raid_id", raid.ID).Msg("❌ Publication du raid impossible")
		followupEphemeral(s, i.Interaction, h.translate(i, "errors.publish_raid_failed", nil))
	}
}

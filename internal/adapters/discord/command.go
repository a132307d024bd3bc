package discord

import (
	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	pkgdiscord "raidbot/pkg/discord"
)

const (
	cmdRaid      = "raid"
	cmdSignup    = "signup"
	cmdCharacter = "character"
	cmdCycle     = "cycle"
	cmdPreset    = "preset"
)

func difficultyChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: pkgdiscord.DifficultyLabel(d), Value: string(d)})
	}
	return out
}

func lootChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.LootModes))
	for _, l := range domain.LootModes {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: pkgdiscord.LootLabel(l), Value: string(l)})
	}
	return out
}

func roleChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: string(r), Value: string(r)})
	}
	return out
}

// Commands lists the slash commands registered by the bot.
func Commands() []*discordgo.ApplicationCommand {
	minID := 1.0
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdRaid,
			Description: "Créer un raid",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "difficulty", Description: "Difficulté", Required: true, Choices: difficultyChoices()},
				{Type: discordgo.ApplicationCommandOptionString, Name: "loot", Description: "Mode de loot", Required: true, Choices: lootChoices()},
				{Type: discordgo.ApplicationCommandOptionString, Name: "preset", Description: "Composition du roster"},
			},
		},
		{
			Name:        cmdSignup,
			Description: "S'inscrire à un raid",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "raid", Description: "Numéro du raid (pied du post)", Required: true, MinValue: &minID},
				{Type: discordgo.ApplicationCommandOptionString, Name: "role", Description: "Rôle", Required: true, Choices: roleChoices()},
				{Type: discordgo.ApplicationCommandOptionString, Name: "character", Description: "Nom-Royaume, vide pour une place flex"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "saved", Description: "Déjà saved cette semaine"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "note", Description: "Note pour le lead"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "picked", Description: "Inscrire directement dans le roster (lead)"},
			},
		},
		{
			Name:        cmdCharacter,
			Description: "Gérer tes personnages",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Ajouter un personnage",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Nom", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "realm", Description: "Royaume", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "class", Description: "Classe"},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Lister tes personnages"},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Supprimer un personnage",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "character", Description: "Nom-Royaume", Required: true},
					},
				},
			},
		},
		{Name: cmdCycle, Description: "Afficher le cycle en cours"},
		{
			Name:        cmdPreset,
			Description: "Gérer les compositions de roster",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Créer une composition",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Nom", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "tanks", Description: "Tanks", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "healers", Description: "Heals", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "dps", Description: "DPS", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Lister les compositions"},
			},
		},
	}
}

// HandleCommand routes slash commands by name.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case cmdRaid:
		h.HandleRaidCommand(s, i, data)
	case cmdSignup:
		h.HandleSignupCommand(s, i, data)
	case cmdCharacter:
		h.HandleCharacterCommand(s, i, data)
	case cmdCycle:
		h.HandleCycleCommand(s, i)
	case cmdPreset:
		h.HandlePresetCommand(s, i, data)
	}
}

// commandOptions indexes options by name.
func commandOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func optString(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := m[name]; ok {
		return o.StringValue()
	}
	return ""
}

func optInt(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if o, ok := m[name]; ok {
		return o.IntValue()
	}
	return 0
}

func optBool(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	if o, ok := m[name]; ok {
		return o.BoolValue()
	}
	return false
}

// HandleCycleCommand shows the current cycle with its raids, and the next one.
func (h *Handler) HandleCycleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	now := h.now()
	current := h.signupUseCase.CycleWindowContaining(now)
	next := h.signupUseCase.NextCycleWindow(now)

	ctx, cancel := h.opContext()
	defer cancel()
	raids, err := h.raidUseCase.RaidsInWindow(ctx, current)
	if err != nil {
		h.respondError(s, i, "cycle", err)
		return
	}
	content := h.translate(i, "info.cycle_next", map[string]any{
		"Start": pkgdiscord.FormatRaidDateTime(next.Start, h.loc),
		"End":   pkgdiscord.FormatRaidDateTime(next.End, h.loc),
	})
	respondEphemeralEmbed(s, i.Interaction, content, pkgdiscord.BuildCycleEmbed(current, raids, h.loc))
}

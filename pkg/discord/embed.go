package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
)

const (
	embedColor      = 0x5865F2
	cycleEmbedColor = 0xF1C40F

	// Discord rejects field values above 1024 characters.
	maxFieldLen = 1024
	emptyField  = "-"
)

var difficultyLabels = map[domain.Difficulty]string{
	domain.DifficultyNormal: "Normal",
	domain.DifficultyHeroic: "Héroïque",
	domain.DifficultyMythic: "Mythique",
}

var lootLabels = map[domain.LootMode]string{
	domain.LootSaved:   "Saved",
	domain.LootUnsaved: "Unsaved",
	domain.LootVIP:     "VIP",
}

var roleLabels = map[domain.Role]string{
	domain.RoleTank:   "🛡️ Tanks",
	domain.RoleHealer: "💚 Heals",
	domain.RoleDPS:    "⚔️ DPS",
}

func DifficultyLabel(d domain.Difficulty) string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	return string(d)
}

func LootLabel(l domain.LootMode) string {
	if s, ok := lootLabels[l]; ok {
		return s
	}
	return string(l)
}

// RosterView is everything the roster post shows about a raid.
type RosterView struct {
	Raid       *entities.Raid
	Preset     *entities.Preset
	Picked     []entities.Signup
	Registered []entities.Signup
	Characters map[uint]entities.Character
	Location   *time.Location
}

// BuildRosterEmbed renders the raid post: header, one field per role with the
// picked signups, and the registered signups waiting to be picked.
func BuildRosterEmbed(v RosterView) *discordgo.MessageEmbed {
	raid := v.Raid
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**Lead :** <@%s>\n", raid.LeadID))
	b.WriteString(fmt.Sprintf("**Quand :** %s (%s)\n", FormatRaidDateTime(raid.StartsAt, v.Location), DiscordTimestamp(raid.StartsAt, "R")))
	b.WriteString(fmt.Sprintf("**Loot :** %s • **Boss :** %d", LootLabel(raid.LootMode), raid.BossCount))
	if v.Preset != nil {
		b.WriteString(fmt.Sprintf(" • **Compo :** %s", v.Preset.Name))
	}
	if note := strings.TrimSpace(raid.Note); note != "" {
		b.WriteString("\n\n" + note)
	}

	byRole := make(map[domain.Role][]string, len(domain.Roles))
	for _, s := range v.Picked {
		byRole[s.Role] = append(byRole[s.Role], signupLine(s, v.Characters))
	}
	fields := make([]*discordgo.MessageEmbedField, 0, len(domain.Roles)+1)
	for _, role := range domain.Roles {
		name := fmt.Sprintf("%s (%d)", roleLabels[role], len(byRole[role]))
		if v.Preset != nil {
			name = fmt.Sprintf("%s (%d/%d)", roleLabels[role], len(byRole[role]), v.Preset.Capacity(role))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  joinField(byRole[role]),
			Inline: true,
		})
	}

	waiting := make([]string, 0, len(v.Registered))
	for _, s := range v.Registered {
		waiting = append(waiting, signupLine(s, v.Characters))
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("📝 Inscrits (%d)", len(v.Registered)),
		Value: joinField(waiting),
	})

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s (%s)", raid.Title, DifficultyLabel(raid.Difficulty)),
		Description: b.String(),
		Color:       embedColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Raid #%d", raid.ID)},
		Timestamp:   raid.StartsAt.UTC().Format(time.RFC3339),
	}
}

// SignupLabel describes a signup in one line: the character, or Flex.
func SignupLabel(s entities.Signup, characters map[uint]entities.Character) string {
	id, ok := s.CharacterID()
	if !ok {
		return "Flex"
	}
	if c, found := characters[id]; found {
		return c.Label()
	}
	return fmt.Sprintf("Perso #%d", id)
}

func signupLine(s entities.Signup, characters map[uint]entities.Character) string {
	line := fmt.Sprintf("<@%s> • %s", s.UserID, SignupLabel(s, characters))
	if !s.IsPicked() {
		line += " (" + string(s.Role) + ")"
	}
	if s.Saved {
		line += " 💾"
	}
	if note := strings.TrimSpace(s.Note); note != "" {
		line += " *" + note + "*"
	}
	return line
}

// joinField joins lines into a field value, cutting the list when it would
// exceed the Discord limit.
func joinField(lines []string) string {
	if len(lines) == 0 {
		return emptyField
	}
	var b strings.Builder
	for i, l := range lines {
		more := fmt.Sprintf("… +%d", len(lines)-i)
		if b.Len()+len(l)+1+len(more) > maxFieldLen {
			b.WriteString(more)
			break
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildCycleEmbed lists the raids of a cycle window.
func BuildCycleEmbed(w cycle.Window, raids []entities.Raid, loc *time.Location) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(raids))
	for _, r := range raids {
		lines = append(lines, fmt.Sprintf("• %s **%s** (%s, %s)",
			FormatRaidDateTime(r.StartsAt, loc), r.Title, DifficultyLabel(r.Difficulty), LootLabel(r.LootMode)))
	}
	desc := "Aucun raid prévu pour ce cycle."
	if len(lines) > 0 {
		desc = joinField(lines)
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🗓️ Cycle du %s au %s", FormatRaidDateTime(w.Start, loc), FormatRaidDateTime(w.End, loc)),
		Description: desc,
		Color:       cycleEmbedColor,
	}
}

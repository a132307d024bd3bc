package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
	"raidbot/pkg/tz"
)

func rosterFixture() RosterView {
	raid := &entities.Raid{
		ID: 12, LeadID: "lead", Title: "Nerub'ar", Note: "Pull à 21h",
		Difficulty: domain.DifficultyHeroic, LootMode: domain.LootVIP, BossCount: 8,
		StartsAt: time.Date(2025, 3, 27, 20, 30, 0, 0, tz.Paris),
	}
	return RosterView{
		Raid:   raid,
		Preset: &entities.Preset{Name: "Standard", Tanks: 2, Healers: 4, DPS: 14},
		Picked: []entities.Signup{
			{UserID: "u1", Character: entities.Booster{CharacterID: 1}, Role: domain.RoleTank, Status: domain.StatusPicked},
			{UserID: "u2", Character: entities.Flex{}, Role: domain.RoleDPS, Status: domain.StatusPicked, Saved: true},
		},
		Registered: []entities.Signup{
			{UserID: "u3", Character: entities.Booster{CharacterID: 99}, Role: domain.RoleHealer, Status: domain.StatusRegistered, Note: "dispo 22h"},
		},
		Characters: map[uint]entities.Character{1: {ID: 1, Name: "Thrall", Realm: "Hyjal"}},
		Location:   tz.Paris,
	}
}

func TestBuildRosterEmbed(t *testing.T) {
	e := BuildRosterEmbed(rosterFixture())

	assert.Equal(t, "⚔️ Nerub'ar (Héroïque)", e.Title)
	assert.Contains(t, e.Description, "<@lead>")
	assert.Contains(t, e.Description, "27/03/2025 à 20:30")
	assert.Contains(t, e.Description, "VIP")
	assert.Contains(t, e.Description, "Standard")
	assert.Contains(t, e.Description, "Pull à 21h")
	assert.Equal(t, "Raid #12", e.Footer.Text)

	require.Len(t, e.Fields, 4)
	assert.Equal(t, "🛡️ Tanks (1/2)", e.Fields[0].Name)
	assert.Equal(t, "<@u1> • Thrall-Hyjal", e.Fields[0].Value)
	assert.Equal(t, "💚 Heals (0/4)", e.Fields[1].Name)
	assert.Equal(t, emptyField, e.Fields[1].Value)
	assert.Equal(t, "<@u2> • Flex 💾", e.Fields[2].Value)
	assert.Equal(t, "📝 Inscrits (1)", e.Fields[3].Name)
	assert.Equal(t, "<@u3> • Perso #99 (healer) *dispo 22h*", e.Fields[3].Value)
}

func TestBuildRosterEmbed_NoPreset(t *testing.T) {
	v := rosterFixture()
	v.Preset = nil
	e := BuildRosterEmbed(v)
	assert.Equal(t, "🛡️ Tanks (1)", e.Fields[0].Name)
	assert.NotContains(t, e.Description, "Compo")
}

func TestJoinFieldTruncates(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("<@%018d> • Character-Realm", i)
	}
	out := joinField(lines)
	assert.LessOrEqual(t, len(out), maxFieldLen)
	assert.True(t, strings.Contains(out, "… +"))
	assert.Equal(t, emptyField, joinField(nil))
}

func TestBuildCycleEmbed(t *testing.T) {
	w := cycle.Window{
		Start: time.Date(2025, 3, 26, 5, 0, 0, 0, tz.Paris),
		End:   time.Date(2025, 4, 2, 5, 0, 0, 0, tz.Paris),
	}
	e := BuildCycleEmbed(w, nil, tz.Paris)
	assert.Equal(t, "🗓️ Cycle du 26/03/2025 à 05:00 au 02/04/2025 à 05:00", e.Title)
	assert.Equal(t, "Aucun raid prévu pour ce cycle.", e.Description)

	e = BuildCycleEmbed(w, []entities.Raid{*rosterFixture().Raid}, tz.Paris)
	assert.Contains(t, e.Description, "**Nerub'ar**")
	assert.Contains(t, e.Description, "Héroïque, VIP")
}

func TestLabelsFallBackToRawValue(t *testing.T) {
	assert.Equal(t, "lfr", DifficultyLabel("lfr"))
	assert.Equal(t, "gdkp", LootLabel("gdkp"))
}

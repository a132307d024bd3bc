package entities

import (
	"time"

	"raidbot/internal/domain"
)

type Raid struct {
	ID         uint
	MessageID  string // roster post, empty until the bot has published it
	ChannelID  string
	LeadID     string
	Title      string
	Note       string
	Difficulty domain.Difficulty
	LootMode   domain.LootMode
	BossCount  int
	StartsAt   time.Time
	PresetID   *uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasPost reports whether the raid has been mirrored into a Discord message.
func (r *Raid) HasPost() bool {
	return r.ChannelID != "" && r.MessageID != ""
}

// Preset is a roster capacity template.
type Preset struct {
	ID      uint
	Name    string
	Tanks   int
	Healers int
	DPS     int
}

// Capacity returns the number of slots the preset reserves for role.
func (p *Preset) Capacity(role domain.Role) int {
	switch role {
	case domain.RoleTank:
		return p.Tanks
	case domain.RoleHealer:
		return p.Healers
	case domain.RoleDPS:
		return p.DPS
	}
	return 0
}

func (p *Preset) Size() int {
	return p.Tanks + p.Healers + p.DPS
}

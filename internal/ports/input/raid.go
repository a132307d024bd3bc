package input

import (
	"context"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
)

type CreateRaidInput struct {
	LeadID     string
	Title      string
	Note       string
	Difficulty domain.Difficulty
	LootMode   domain.LootMode
	BossCount  int
	StartsAt   time.Time
	PresetID   *uint
}

// RosterSummary is the roster of a raid split by status, with per-role counts.
type RosterSummary struct {
	Raid       entities.Raid
	Preset     *entities.Preset
	Picked     []entities.Signup
	Registered []entities.Signup
	// PickedByRole counts picked signups per role.
	PickedByRole map[domain.Role]int
	Characters   map[uint]entities.Character
}

type RaidUseCase interface {
	CreateRaid(ctx context.Context, in CreateRaidInput) (*entities.Raid, error)
	GetRaid(ctx context.Context, id uint) (*entities.Raid, error)
	GetRaidByMessageID(ctx context.Context, messageID string) (*entities.Raid, error)
	AttachMessage(ctx context.Context, raidID uint, channelID, messageID string) error
	DeleteRaid(ctx context.Context, raidID uint, actor entities.Actor) (*entities.Raid, error)
	Roster(ctx context.Context, raidID uint) (*RosterSummary, error)
	RaidsInWindow(ctx context.Context, w cycle.Window) ([]entities.Raid, error)
	MayManage(actor entities.Actor, raid *entities.Raid) bool
	CreatePreset(ctx context.Context, preset *entities.Preset, actor entities.Actor) error
	ListPresets(ctx context.Context) ([]entities.Preset, error)
	FindPreset(ctx context.Context, name string) (*entities.Preset, error)
}

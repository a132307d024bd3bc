package output

import (
	"context"
	"time"

	"raidbot/internal/domain/entities"
)

type RaidRepository interface {
	Create(ctx context.Context, raid *entities.Raid) error
	FindByID(ctx context.Context, id uint) (*entities.Raid, error)
	FindByMessageID(ctx context.Context, messageID string) (*entities.Raid, error)
	// FindStartingBetween returns raids with from <= starts_at < to, ordered by start.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Raid, error)
	SetMessage(ctx context.Context, id uint, channelID, messageID string) error
	Update(ctx context.Context, raid *entities.Raid) error
	Delete(ctx context.Context, id uint) error
}

type PresetRepository interface {
	Create(ctx context.Context, preset *entities.Preset) error
	FindByID(ctx context.Context, id uint) (*entities.Preset, error)
	FindByName(ctx context.Context, name string) (*entities.Preset, error)
	List(ctx context.Context) ([]entities.Preset, error)
}

package database

import (
	"context"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/ports/output"
)

var _ output.RaidRepository = (*RaidRepository)(nil)

type RaidRepository struct {
	q *sqlc_generated.Queries
}

func NewRaidRepository(q *sqlc_generated.Queries) *RaidRepository {
	return &RaidRepository{q: q}
}

func (r *RaidRepository) Create(ctx context.Context, raid *entities.Raid) error {
	row, err := r.q.CreateRaid(ctx, sqlc_generated.CreateRaidParams{
		LeadID:     raid.LeadID,
		Title:      raid.Title,
		Note:       raid.Note,
		Difficulty: string(raid.Difficulty),
		LootMode:   string(raid.LootMode),
		BossCount:  int32(raid.BossCount),
		StartsAt:   timestamptz(raid.StartsAt),
		PresetID:   nullableID(raid.PresetID),
	})
	if err != nil {
		return wrapErr(err, "create raid", nil, nil)
	}
	raid.ID = uint(row.ID)
	raid.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	raid.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *RaidRepository) FindByID(ctx context.Context, id uint) (*entities.Raid, error) {
	row, err := r.q.GetRaidByID(ctx, int64(id))
	if err != nil {
		return nil, wrapErr(err, "get raid by id", domain.ErrRaidNotFound, nil)
	}
	raid := raidToDomain(row)
	return &raid, nil
}

func (r *RaidRepository) FindByMessageID(ctx context.Context, messageID string) (*entities.Raid, error) {
	row, err := r.q.GetRaidByMessageID(ctx, messageID)
	if err != nil {
		return nil, wrapErr(err, "get raid by message id", domain.ErrRaidNotFound, nil)
	}
	raid := raidToDomain(row)
	return &raid, nil
}

func (r *RaidRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Raid, error) {
	rows, err := r.q.GetRaidsStartingBetween(ctx, sqlc_generated.GetRaidsStartingBetweenParams{
		FromTime: timestamptz(from),
		ToTime:   timestamptz(to),
	})
	if err != nil {
		return nil, wrapErr(err, "get raids starting between", nil, nil)
	}
	out := make([]entities.Raid, len(rows))
	for i := range rows {
		out[i] = raidToDomain(rows[i])
	}
	return out, nil
}

func (r *RaidRepository) SetMessage(ctx context.Context, id uint, channelID, messageID string) error {
	n, err := r.q.SetRaidMessage(ctx, sqlc_generated.SetRaidMessageParams{
		ID:        int64(id),
		ChannelID: channelID,
		MessageID: messageID,
	})
	if err != nil {
		return wrapErr(err, "set raid message", nil, nil)
	}
	if n == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

func (r *RaidRepository) Update(ctx context.Context, raid *entities.Raid) error {
	n, err := r.q.UpdateRaid(ctx, sqlc_generated.UpdateRaidParams{
		ID:         int64(raid.ID),
		Title:      raid.Title,
		Note:       raid.Note,
		Difficulty: string(raid.Difficulty),
		LootMode:   string(raid.LootMode),
		BossCount:  int32(raid.BossCount),
		StartsAt:   timestamptz(raid.StartsAt),
		PresetID:   nullableID(raid.PresetID),
	})
	if err != nil {
		return wrapErr(err, "update raid", nil, nil)
	}
	if n == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

// Delete removes the raid; its signups go with it (ON DELETE CASCADE).
func (r *RaidRepository) Delete(ctx context.Context, id uint) error {
	n, err := r.q.DeleteRaid(ctx, int64(id))
	if err != nil {
		return wrapErr(err, "delete raid", nil, nil)
	}
	if n == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

var _ output.PresetRepository = (*PresetRepository)(nil)

type PresetRepository struct {
	q *sqlc_generated.Queries
}

func NewPresetRepository(q *sqlc_generated.Queries) *PresetRepository {
	return &PresetRepository{q: q}
}

func (r *PresetRepository) Create(ctx context.Context, preset *entities.Preset) error {
	row, err := r.q.CreatePreset(ctx, sqlc_generated.CreatePresetParams{
		Name:    preset.Name,
		Tanks:   int32(preset.Tanks),
		Healers: int32(preset.Healers),
		Dps:     int32(preset.DPS),
	})
	if err != nil {
		return wrapErr(err, "create preset", nil, domain.ErrPresetExists)
	}
	preset.ID = uint(row.ID)
	return nil
}

func (r *PresetRepository) FindByID(ctx context.Context, id uint) (*entities.Preset, error) {
	row, err := r.q.GetPresetByID(ctx, int64(id))
	if err != nil {
		return nil, wrapErr(err, "get preset by id", domain.ErrPresetNotFound, nil)
	}
	p := presetToDomain(row)
	return &p, nil
}

func (r *PresetRepository) FindByName(ctx context.Context, name string) (*entities.Preset, error) {
	row, err := r.q.GetPresetByName(ctx, name)
	if err != nil {
		return nil, wrapErr(err, "get preset by name", domain.ErrPresetNotFound, nil)
	}
	p := presetToDomain(row)
	return &p, nil
}

func (r *PresetRepository) List(ctx context.Context) ([]entities.Preset, error) {
	rows, err := r.q.ListPresets(ctx)
	if err != nil {
		return nil, wrapErr(err, "list presets", nil, nil)
	}
	out := make([]entities.Preset, len(rows))
	for i := range rows {
		out[i] = presetToDomain(rows[i])
	}
	return out, nil
}

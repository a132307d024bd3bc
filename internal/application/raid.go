package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

const maxBossCount = 20

var _ input.RaidUseCase = (*RaidService)(nil)

type RaidService struct {
	raidRepo      output.RaidRepository
	signupRepo    output.SignupRepository
	characterRepo output.CharacterRepository
	presetRepo    output.PresetRepository
	authority     output.Authority
	log           zerolog.Logger
	now           func() time.Time
}

func NewRaidService(
	raidRepo output.RaidRepository,
	signupRepo output.SignupRepository,
	characterRepo output.CharacterRepository,
	presetRepo output.PresetRepository,
	authority output.Authority,
	log zerolog.Logger,
) *RaidService {
	return &RaidService{
		raidRepo:      raidRepo,
		signupRepo:    signupRepo,
		characterRepo: characterRepo,
		presetRepo:    presetRepo,
		authority:     authority,
		log:           log.With().Str("component", "raids").Logger(),
		now:           time.Now,
	}
}

func (s *RaidService) CreateRaid(ctx context.Context, in input.CreateRaidInput) (*entities.Raid, error) {
	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		return nil, domain.ErrTitleRequired
	case !in.Difficulty.Valid():
		return nil, domain.ErrInvalidDifficulty
	case !in.LootMode.Valid():
		return nil, domain.ErrInvalidLootMode
	case in.BossCount < 1 || in.BossCount > maxBossCount:
		return nil, domain.ErrInvalidBossCount
	case in.StartsAt.IsZero():
		return nil, domain.ErrInvalidDateTime
	case !in.StartsAt.After(s.now()):
		return nil, domain.ErrDateTimeInPast
	}
	if in.PresetID != nil {
		if _, err := s.presetRepo.FindByID(ctx, *in.PresetID); err != nil {
			return nil, err
		}
	}
	raid := &entities.Raid{
		LeadID:     in.LeadID,
		Title:      title,
		Note:       strings.TrimSpace(in.Note),
		Difficulty: in.Difficulty,
		LootMode:   in.LootMode,
		BossCount:  in.BossCount,
		StartsAt:   in.StartsAt,
		PresetID:   in.PresetID,
	}
	if err := s.raidRepo.Create(ctx, raid); err != nil {
		return nil, err
	}
	s.log.Info().Uint("raid_id", raid.ID).Str("lead", raid.LeadID).Time("starts_at", raid.StartsAt).Msg("✅ Raid créé")
	return raid, nil
}

func (s *RaidService) GetRaid(ctx context.Context, id uint) (*entities.Raid, error) {
	return s.raidRepo.FindByID(ctx, id)
}

func (s *RaidService) GetRaidByMessageID(ctx context.Context, messageID string) (*entities.Raid, error) {
	return s.raidRepo.FindByMessageID(ctx, messageID)
}

func (s *RaidService) AttachMessage(ctx context.Context, raidID uint, channelID, messageID string) error {
	return s.raidRepo.SetMessage(ctx, raidID, channelID, messageID)
}

// DeleteRaid deletes the raid and, by cascade, all of its signups.
func (s *RaidService) DeleteRaid(ctx context.Context, raidID uint, actor entities.Actor) (*entities.Raid, error) {
	raid, err := s.raidRepo.FindByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if !s.authority.MayManage(actor, raid) {
		return nil, domain.ErrNotManager
	}
	if err := s.raidRepo.Delete(ctx, raid.ID); err != nil {
		return nil, err
	}
	s.log.Info().Uint("raid_id", raid.ID).Str("actor", actor.UserID).Msg("🗑️ Raid supprimé")
	return raid, nil
}

func (s *RaidService) MayManage(actor entities.Actor, raid *entities.Raid) bool {
	return s.authority.MayManage(actor, raid)
}

func (s *RaidService) Roster(ctx context.Context, raidID uint) (*input.RosterSummary, error) {
	raid, err := s.raidRepo.FindByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	signups, err := s.signupRepo.FindByRaidID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	summary := &input.RosterSummary{
		Raid:         *raid,
		PickedByRole: make(map[domain.Role]int, len(domain.Roles)),
		Characters:   make(map[uint]entities.Character),
	}
	if raid.PresetID != nil {
		preset, err := s.presetRepo.FindByID(ctx, *raid.PresetID)
		switch {
		case err == nil:
			summary.Preset = preset
		case !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}
	for _, su := range signups {
		if su.IsPicked() {
			summary.Picked = append(summary.Picked, su)
			summary.PickedByRole[su.Role]++
		} else {
			summary.Registered = append(summary.Registered, su)
		}
		if charID, ok := su.CharacterID(); ok {
			if _, done := summary.Characters[charID]; done {
				continue
			}
			char, err := s.characterRepo.FindByID(ctx, charID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			summary.Characters[charID] = *char
		}
	}
	return summary, nil
}

func (s *RaidService) RaidsInWindow(ctx context.Context, w cycle.Window) ([]entities.Raid, error) {
	return s.raidRepo.FindStartingBetween(ctx, w.Start, w.End)
}

// CreatePreset is reserved to admins and owners.
func (s *RaidService) CreatePreset(ctx context.Context, preset *entities.Preset, actor entities.Actor) error {
	if !actor.Tier.Elevated() {
		return domain.ErrNotManager
	}
	preset.Name = strings.TrimSpace(preset.Name)
	if preset.Name == "" || preset.Tanks < 0 || preset.Healers < 0 || preset.DPS < 0 || preset.Size() == 0 {
		return domain.ErrInvalidPreset
	}
	return s.presetRepo.Create(ctx, preset)
}

func (s *RaidService) ListPresets(ctx context.Context) ([]entities.Preset, error) {
	return s.presetRepo.List(ctx)
}

func (s *RaidService) FindPreset(ctx context.Context, name string) (*entities.Preset, error) {
	return s.presetRepo.FindByName(ctx, strings.TrimSpace(name))
}

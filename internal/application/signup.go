package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"raidbot/internal/domain"
	"raidbot/internal/domain/conflict"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

var _ input.SignupUseCase = (*SignupService)(nil)

// SignupService drives the signup lifecycle: registered -> picked -> registered,
// and removal from either state. Every operation runs in one transaction.
type SignupService struct {
	tx        output.Transactor
	signups   output.SignupRepository
	engine    *conflict.Engine
	cycles    *cycle.Calculator
	authority output.Authority
	notifier  output.RaidNotifier
	log       zerolog.Logger
	now       func() time.Time
}

func NewSignupService(
	tx output.Transactor,
	signups output.SignupRepository,
	engine *conflict.Engine,
	cycles *cycle.Calculator,
	authority output.Authority,
	notifier output.RaidNotifier,
	log zerolog.Logger,
) *SignupService {
	return &SignupService{
		tx:        tx,
		signups:   signups,
		engine:    engine,
		cycles:    cycles,
		authority: authority,
		notifier:  notifier,
		log:       log.With().Str("component", "signups").Logger(),
		now:       time.Now,
	}
}

// newSignup validates in without touching storage.
func newSignup(in input.CreateSignupInput) (*entities.Signup, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	status := in.Status
	if status == "" {
		status = domain.StatusRegistered
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	var ref entities.CharacterRef = entities.Flex{}
	if in.Booster {
		if in.CharacterID == 0 {
			return nil, domain.ErrCharacterRequired
		}
		ref = entities.Booster{CharacterID: in.CharacterID}
	}
	return &entities.Signup{
		RaidID:    in.RaidID,
		UserID:    in.UserID,
		Username:  strings.TrimSpace(in.Username),
		Character: ref,
		Role:      in.Role,
		Saved:     in.Saved,
		Note:      strings.TrimSpace(in.Note),
		Status:    status,
	}, nil
}

func (s *SignupService) CreateSignup(ctx context.Context, in input.CreateSignupInput, actor entities.Actor) (*entities.Signup, error) {
	signup, err := newSignup(in)
	if err != nil {
		return nil, err
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
		raid, err := tx.Raids().FindByID(ctx, signup.RaidID)
		if err != nil {
			return err
		}
		if charID, ok := signup.CharacterID(); ok {
			char, err := tx.Characters().FindByID(ctx, charID)
			if err != nil {
				return err
			}
			if char.UserID != signup.UserID {
				return domain.ErrNotCharacterOwner
			}
			existing, err := tx.Signups().FindByRaidAndCharacter(ctx, raid.ID, charID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if existing != nil {
				return domain.ErrSignupExists
			}
		}
		if signup.Status == domain.StatusPicked && !s.authority.MayManage(actor, raid) {
			s.log.Debug().Str("actor", actor.UserID).Uint("raid_id", raid.ID).Msg("picked status requested without authority, registering instead")
			signup.Status = domain.StatusRegistered
		}
		if signup.Status == domain.StatusPicked {
			if err := s.admit(ctx, tx, signup, raid); err != nil {
				return err
			}
		}
		signup.CreatedAt = s.now()
		return tx.Signups().Create(ctx, signup)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("signup_id", signup.ID).Uint("raid_id", signup.RaidID).Str("user", signup.UserID).
		Str("status", string(signup.Status)).Msg("✅ Inscription créée")
	if signup.IsBooster() {
		s.notify(ctx, signup.RaidID)
	}
	return signup, nil
}

func (s *SignupService) PickSignup(ctx context.Context, signupID uint, actor entities.Actor) (*entities.Signup, error) {
	var (
		picked  *entities.Signup
		removed []entities.Signup
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
		signup, raid, err := s.loadManaged(ctx, tx, signupID, actor)
		if err != nil {
			return err
		}
		if err := s.admit(ctx, tx, signup, raid); err != nil {
			return err
		}
		if err := tx.Signups().UpdateStatus(ctx, signup.ID, domain.StatusPicked); err != nil {
			return err
		}
		if signup.IsBooster() {
			removed, err = s.cleanupCycleRegistrations(ctx, tx, signup, raid)
			if err != nil {
				return err
			}
		}
		picked, err = tx.Signups().FindByID(ctx, signup.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("signup_id", picked.ID).Uint("raid_id", picked.RaidID).Str("actor", actor.UserID).
		Int("cleaned", len(removed)).Msg("✅ Inscription pick")
	raids := []uint{picked.RaidID}
	for _, r := range removed {
		raids = append(raids, r.RaidID)
	}
	s.notify(ctx, raids...)
	return picked, nil
}

func (s *SignupService) UnpickSignup(ctx context.Context, signupID uint, actor entities.Actor) (*entities.Signup, error) {
	var unpicked *entities.Signup
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
		signup, _, err := s.loadManaged(ctx, tx, signupID, actor)
		if err != nil {
			return err
		}
		if err := tx.LockUser(ctx, signup.UserID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if err := tx.Signups().UpdateStatus(ctx, signup.ID, domain.StatusRegistered); err != nil {
			return err
		}
		unpicked, err = tx.Signups().FindByID(ctx, signup.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("signup_id", unpicked.ID).Uint("raid_id", unpicked.RaidID).Str("actor", actor.UserID).Msg("✅ Inscription unpick")
	s.notify(ctx, unpicked.RaidID)
	return unpicked, nil
}

// RemoveSignup deletes a signup in any state. Authorization is the caller's job.
func (s *SignupService) RemoveSignup(ctx context.Context, signupID uint) error {
	var raidID uint
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
		signup, err := tx.Signups().FindByID(ctx, signupID)
		if err != nil {
			return err
		}
		if err := tx.LockUser(ctx, signup.UserID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		raidID = signup.RaidID
		return tx.Signups().Delete(ctx, signup.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info().Uint("signup_id", signupID).Uint("raid_id", raidID).Msg("🗑️ Inscription supprimée")
	s.notify(ctx, raidID)
	return nil
}

func (s *SignupService) GetSignup(ctx context.Context, signupID uint) (*entities.Signup, error) {
	return s.signups.FindByID(ctx, signupID)
}

func (s *SignupService) ListSignups(ctx context.Context, raidID uint) ([]entities.Signup, error) {
	return s.signups.FindByRaidID(ctx, raidID)
}

func (s *SignupService) SignupsForUser(ctx context.Context, raidID uint, userID string) ([]entities.Signup, error) {
	return s.signups.FindByRaidAndUser(ctx, raidID, userID)
}

func (s *SignupService) CycleWindowContaining(t time.Time) cycle.Window {
	return s.cycles.WindowContaining(t)
}

func (s *SignupService) NextCycleWindow(t time.Time) cycle.Window {
	return s.cycles.NextWindow(t)
}

// loadManaged loads a signup and its raid and checks that actor manages the raid.
func (s *SignupService) loadManaged(ctx context.Context, tx output.Tx, signupID uint, actor entities.Actor) (*entities.Signup, *entities.Raid, error) {
	signup, err := tx.Signups().FindByID(ctx, signupID)
	if err != nil {
		return nil, nil, err
	}
	raid, err := tx.Raids().FindByID(ctx, signup.RaidID)
	if err != nil {
		return nil, nil, err
	}
	if !s.authority.MayManage(actor, raid) {
		return nil, nil, domain.ErrNotManager
	}
	return signup, raid, nil
}

// admit locks the roster of the signup's user (and character) and runs the
// conflict rules against the current picked state.
func (s *SignupService) admit(ctx context.Context, tx output.Tx, signup *entities.Signup, raid *entities.Raid) error {
	if err := tx.LockUser(ctx, signup.UserID); err != nil {
		return fmt.Errorf("lock user: %w", err)
	}
	from, to := s.engine.ProximityRange(raid.StartsAt)
	byUser, err := tx.Signups().FindPickedByUserBetween(ctx, signup.UserID, from, to)
	if err != nil {
		return err
	}

	var byCharacter []entities.PickedSignup
	if charID, ok := signup.CharacterID(); ok {
		if err := tx.LockCharacter(ctx, charID); err != nil {
			return fmt.Errorf("lock character: %w", err)
		}
		w := s.cycles.WindowContaining(raid.StartsAt)
		byCharacter, err = tx.Signups().FindPickedByCharacterBetween(ctx, charID, w.Start, w.End)
		if err != nil {
			return err
		}
	}

	if err := s.engine.Evaluate(conflict.Target{Signup: *signup, Raid: *raid}, byUser, byCharacter); err != nil {
		if ce, ok := domain.AsConflict(err); ok {
			s.log.Info().Uint("signup_id", signup.ID).Uint("raid_id", raid.ID).Str("reason", string(ce.Reason)).
				Uint("conflict_signup_id", ce.SignupID).Uint("conflict_raid_id", ce.RaidID).Msg("⛔ Pick refusé")
		}
		return err
	}
	return nil
}

// cleanupCycleRegistrations removes the other registered signups of the picked
// character whose raid falls in the same cycle window. Picked signups and raids
// outside the window are untouched.
func (s *SignupService) cleanupCycleRegistrations(ctx context.Context, tx output.Tx, signup *entities.Signup, raid *entities.Raid) ([]entities.Signup, error) {
	charID, ok := signup.CharacterID()
	if !ok {
		return nil, nil
	}
	w := s.cycles.WindowContaining(raid.StartsAt)
	removed, err := tx.Signups().DeleteRegisteredByCharacterBetween(ctx, charID, w.Start, w.End, signup.ID)
	if err != nil {
		return nil, fmt.Errorf("cleanup cycle registrations: %w", err)
	}
	return removed, nil
}

// notify refreshes every given raid once. Failures never reach the caller.
func (s *SignupService) notify(ctx context.Context, raidIDs ...uint) {
	if s.notifier == nil {
		return
	}
	seen := make(map[uint]struct{}, len(raidIDs))
	for _, id := range raidIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if err := s.notifier.NotifyRaid(ctx, id); err != nil {
			s.log.Warn().Err(err).Uint("raid_id", id).Msg("⚠️ Rafraîchissement du raid impossible")
		}
	}
}

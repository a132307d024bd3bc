// Package conflict decides whether a signup may enter the picked roster.
//
// The engine is a pure predicate: callers load the picked signups it needs,
// evaluate, and only then mutate state.
package conflict

import (
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
)

// DefaultProximity is the half-width of the time collision window.
const DefaultProximity = 90 * time.Minute

// Target is the signup being evaluated together with its raid.
type Target struct {
	Signup entities.Signup
	Raid   entities.Raid
}

// Engine evaluates the admission rules in a fixed order; the first failure wins.
type Engine struct {
	cycles    *cycle.Calculator
	proximity time.Duration
}

func NewEngine(cycles *cycle.Calculator, proximity time.Duration) *Engine {
	if proximity <= 0 {
		proximity = DefaultProximity
	}
	return &Engine{cycles: cycles, proximity: proximity}
}

// ProximityRange returns the inclusive range of raid start times that collide
// with a raid starting at start.
func (e *Engine) ProximityRange(start time.Time) (from, to time.Time) {
	return start.Add(-e.proximity), start.Add(e.proximity)
}

// CycleWindow returns the cycle window of the target raid.
func (e *Engine) CycleWindow(start time.Time) cycle.Window {
	return e.cycles.WindowContaining(start)
}

// Evaluate checks target against the picked signups of the same user and of the
// same character. Both slices may contain more rows than needed and may include
// the target itself, which is ignored.
func (e *Engine) Evaluate(target Target, byUser, byCharacter []entities.PickedSignup) error {
	charID, booster := target.Signup.CharacterID()
	if booster {
		if err := e.oneBoosterPerRaid(target, byUser); err != nil {
			return err
		}
		if err := e.oneCharacterPerCycle(target, charID, byCharacter); err != nil {
			return err
		}
	}
	return e.timeProximity(target, byUser)
}

func (e *Engine) oneBoosterPerRaid(target Target, byUser []entities.PickedSignup) error {
	for _, p := range byUser {
		if p.ID == target.Signup.ID || p.UserID != target.Signup.UserID {
			continue
		}
		if p.RaidID == target.Raid.ID && p.IsBooster() {
			return &domain.ConflictError{
				Reason:   domain.ReasonAlreadyBoosterInEvent,
				SignupID: p.ID,
				RaidID:   p.RaidID,
			}
		}
	}
	return nil
}

func (e *Engine) oneCharacterPerCycle(target Target, charID uint, byCharacter []entities.PickedSignup) error {
	window := e.cycles.WindowContaining(target.Raid.StartsAt)
	for _, p := range byCharacter {
		if p.ID == target.Signup.ID || p.RaidID == target.Raid.ID {
			continue
		}
		if id, ok := p.CharacterID(); !ok || id != charID {
			continue
		}
		if p.RaidDifficulty != target.Raid.Difficulty || !window.Contains(p.RaidStartsAt) {
			continue
		}
		return &domain.ConflictError{
			Reason:      domain.ReasonCharPickedInCycle,
			SignupID:    p.ID,
			RaidID:      p.RaidID,
			WindowStart: window.Start,
			WindowEnd:   window.End,
		}
	}
	return nil
}

func (e *Engine) timeProximity(target Target, byUser []entities.PickedSignup) error {
	from, to := e.ProximityRange(target.Raid.StartsAt)

	var (
		first        *entities.PickedSignup
		otherRaid    *entities.PickedSignup
		sameRaidChar bool
	)
	for i := range byUser {
		p := &byUser[i]
		if p.ID == target.Signup.ID || p.UserID != target.Signup.UserID {
			continue
		}
		if p.RaidStartsAt.Before(from) || p.RaidStartsAt.After(to) {
			continue
		}
		if first == nil {
			first = p
		}
		if p.RaidID != target.Raid.ID {
			if otherRaid == nil {
				otherRaid = p
			}
			continue
		}
		if p.IsBooster() {
			sameRaidChar = true
		}
	}

	switch {
	case first == nil:
		return nil
	case otherRaid != nil:
		return e.timeConflict(otherRaid, from, to)
	case !target.Signup.IsBooster() && sameRaidChar:
		// One booster plus flex picks may share a raid.
		return nil
	default:
		return e.timeConflict(first, from, to)
	}
}

func (e *Engine) timeConflict(p *entities.PickedSignup, from, to time.Time) error {
	return &domain.ConflictError{
		Reason:      domain.ReasonTimeConflict,
		SignupID:    p.ID,
		RaidID:      p.RaidID,
		WindowStart: from,
		WindowEnd:   to,
	}
}

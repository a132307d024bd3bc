package output

import (
	"context"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
)

type SignupRepository interface {
	Create(ctx context.Context, signup *entities.Signup) error
	FindByID(ctx context.Context, id uint) (*entities.Signup, error)
	FindByRaidID(ctx context.Context, raidID uint) ([]entities.Signup, error)
	FindByRaidAndCharacter(ctx context.Context, raidID, characterID uint) (*entities.Signup, error)
	FindByRaidAndUser(ctx context.Context, raidID uint, userID string) ([]entities.Signup, error)
	// FindPickedByUserBetween returns the user's picked signups whose raid starts
	// in the inclusive range [from, to].
	FindPickedByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]entities.PickedSignup, error)
	// FindPickedByCharacterBetween returns the character's picked signups whose
	// raid starts in the half-open range [from, to).
	FindPickedByCharacterBetween(ctx context.Context, characterID uint, from, to time.Time) ([]entities.PickedSignup, error)
	// DeleteRegisteredByCharacterBetween deletes the character's registered
	// signups, except exceptID, whose raid starts in [from, to), and returns them.
	DeleteRegisteredByCharacterBetween(ctx context.Context, characterID uint, from, to time.Time, exceptID uint) ([]entities.Signup, error)
	UpdateStatus(ctx context.Context, id uint, status domain.SignupStatus) error
	Delete(ctx context.Context, id uint) error
}

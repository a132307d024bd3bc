package input

import (
	"context"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
)

// CreateSignupInput is a signup request. Booster requests must carry a
// CharacterID; flex requests ignore it.
type CreateSignupInput struct {
	RaidID      uint
	UserID      string
	Username    string
	Booster     bool
	CharacterID uint
	Role        domain.Role
	Saved       bool
	Note        string
	Status      domain.SignupStatus
}

type SignupUseCase interface {
	CreateSignup(ctx context.Context, in CreateSignupInput, actor entities.Actor) (*entities.Signup, error)
	PickSignup(ctx context.Context, signupID uint, actor entities.Actor) (*entities.Signup, error)
	UnpickSignup(ctx context.Context, signupID uint, actor entities.Actor) (*entities.Signup, error)
	RemoveSignup(ctx context.Context, signupID uint) error
	GetSignup(ctx context.Context, signupID uint) (*entities.Signup, error)
	ListSignups(ctx context.Context, raidID uint) ([]entities.Signup, error)
	SignupsForUser(ctx context.Context, raidID uint, userID string) ([]entities.Signup, error)
	CycleWindowContaining(t time.Time) cycle.Window
	NextCycleWindow(t time.Time) cycle.Window
}

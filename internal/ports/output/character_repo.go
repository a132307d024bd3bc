package output

import (
	"context"

	"raidbot/internal/domain/entities"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *entities.Character) error
	FindByID(ctx context.Context, id uint) (*entities.Character, error)
	FindByUserID(ctx context.Context, userID string) ([]entities.Character, error)
	Delete(ctx context.Context, id uint) error
}

package input

import (
	"context"

	"raidbot/internal/domain/entities"
)

type CharacterUseCase interface {
	AddCharacter(ctx context.Context, userID, name, realm, class string) (*entities.Character, error)
	ListCharacters(ctx context.Context, userID string) ([]entities.Character, error)
	RemoveCharacter(ctx context.Context, userID string, characterID uint) error
}

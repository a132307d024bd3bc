package application

import (
	"context"
	"strings"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

var _ input.CharacterUseCase = (*CharacterService)(nil)

type CharacterService struct {
	characterRepo output.CharacterRepository
}

func NewCharacterService(characterRepo output.CharacterRepository) *CharacterService {
	return &CharacterService{characterRepo: characterRepo}
}

func (s *CharacterService) AddCharacter(ctx context.Context, userID, name, realm, class string) (*entities.Character, error) {
	name, realm = strings.TrimSpace(name), strings.TrimSpace(realm)
	if name == "" || realm == "" {
		return nil, domain.ErrCharacterName
	}
	c := &entities.Character{
		UserID: userID,
		Name:   name,
		Realm:  realm,
		Class:  strings.TrimSpace(class),
	}
	if err := s.characterRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CharacterService) ListCharacters(ctx context.Context, userID string) ([]entities.Character, error) {
	return s.characterRepo.FindByUserID(ctx, userID)
}

// RemoveCharacter deletes one of the user's characters along with its signups.
func (s *CharacterService) RemoveCharacter(ctx context.Context, userID string, characterID uint) error {
	c, err := s.characterRepo.FindByID(ctx, characterID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return domain.ErrNotCharacterOwner
	}
	return s.characterRepo.Delete(ctx, c.ID)
}

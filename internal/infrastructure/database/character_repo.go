package database

import (
	"context"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/ports/output"
)

var _ output.CharacterRepository = (*CharacterRepository)(nil)

type CharacterRepository struct {
	q *sqlc_generated.Queries
}

func NewCharacterRepository(q *sqlc_generated.Queries) *CharacterRepository {
	return &CharacterRepository{q: q}
}

func (r *CharacterRepository) Create(ctx context.Context, character *entities.Character) error {
	row, err := r.q.CreateCharacter(ctx, sqlc_generated.CreateCharacterParams{
		UserID: character.UserID,
		Name:   character.Name,
		Realm:  character.Realm,
		Class:  character.Class,
	})
	if err != nil {
		return wrapErr(err, "create character", nil, domain.ErrCharacterExists)
	}
	character.ID = uint(row.ID)
	character.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	return nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uint) (*entities.Character, error) {
	row, err := r.q.GetCharacterByID(ctx, int64(id))
	if err != nil {
		return nil, wrapErr(err, "get character by id", domain.ErrCharacterNotFound, nil)
	}
	c := characterToDomain(row)
	return &c, nil
}

func (r *CharacterRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Character, error) {
	rows, err := r.q.GetCharactersByUserID(ctx, userID)
	if err != nil {
		return nil, wrapErr(err, "get characters by user id", nil, nil)
	}
	out := make([]entities.Character, len(rows))
	for i := range rows {
		out[i] = characterToDomain(rows[i])
	}
	return out, nil
}

// Delete removes the character and, by cascade, every signup bound to it.
func (r *CharacterRepository) Delete(ctx context.Context, id uint) error {
	n, err := r.q.DeleteCharacter(ctx, int64(id))
	if err != nil {
		return wrapErr(err, "delete character", nil, nil)
	}
	if n == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

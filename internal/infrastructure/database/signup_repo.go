package database

import (
	"context"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/ports/output"
)

var _ output.SignupRepository = (*SignupRepository)(nil)

// SignupRepository implements output.SignupRepository using sqlc + pgx.
type SignupRepository struct {
	q *sqlc_generated.Queries
}

// NewSignupRepository creates a SignupRepository.
func NewSignupRepository(q *sqlc_generated.Queries) *SignupRepository {
	return &SignupRepository{q: q}
}

func (r *SignupRepository) Create(ctx context.Context, signup *entities.Signup) error {
	row, err := r.q.CreateSignup(ctx, sqlc_generated.CreateSignupParams{
		RaidID:      int64(signup.RaidID),
		UserID:      signup.UserID,
		Username:    signup.Username,
		CharacterID: characterRefToInt8(signup.Character),
		Role:        string(signup.Role),
		Saved:       signup.Saved,
		Note:        signup.Note,
		Status:      string(signup.Status),
	})
	if err != nil {
		return wrapErr(err, "create signup", nil, domain.ErrSignupExists)
	}
	signup.ID = uint(row.ID)
	signup.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	signup.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *SignupRepository) FindByID(ctx context.Context, id uint) (*entities.Signup, error) {
	row, err := r.q.GetSignupByID(ctx, int64(id))
	if err != nil {
		return nil, wrapErr(err, "get signup by id", domain.ErrSignupNotFound, nil)
	}
	s := signupToDomain(row)
	return &s, nil
}

func (r *SignupRepository) FindByRaidID(ctx context.Context, raidID uint) ([]entities.Signup, error) {
	rows, err := r.q.GetSignupsByRaidID(ctx, int64(raidID))
	if err != nil {
		return nil, wrapErr(err, "get signups by raid id", nil, nil)
	}
	return signupsToDomain(rows), nil
}

func (r *SignupRepository) FindByRaidAndCharacter(ctx context.Context, raidID, characterID uint) (*entities.Signup, error) {
	row, err := r.q.GetSignupByRaidAndCharacter(ctx, sqlc_generated.GetSignupByRaidAndCharacterParams{
		RaidID:      int64(raidID),
		CharacterID: characterRefToInt8(entities.Booster{CharacterID: characterID}),
	})
	if err != nil {
		return nil, wrapErr(err, "get signup by raid and character", domain.ErrSignupNotFound, nil)
	}
	s := signupToDomain(row)
	return &s, nil
}

func (r *SignupRepository) FindByRaidAndUser(ctx context.Context, raidID uint, userID string) ([]entities.Signup, error) {
	rows, err := r.q.GetSignupsByRaidAndUser(ctx, sqlc_generated.GetSignupsByRaidAndUserParams{
		RaidID: int64(raidID),
		UserID: userID,
	})
	if err != nil {
		return nil, wrapErr(err, "get signups by raid and user", nil, nil)
	}
	return signupsToDomain(rows), nil
}

func (r *SignupRepository) FindPickedByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]entities.PickedSignup, error) {
	rows, err := r.q.GetPickedSignupsByUserBetween(ctx, sqlc_generated.GetPickedSignupsByUserBetweenParams{
		UserID:   userID,
		FromTime: timestamptz(from),
		ToTime:   timestamptz(to),
	})
	if err != nil {
		return nil, wrapErr(err, "get picked signups by user", nil, nil)
	}
	out := make([]entities.PickedSignup, len(rows))
	for i := range rows {
		out[i] = pickedByUserToDomain(rows[i])
	}
	return out, nil
}

func (r *SignupRepository) FindPickedByCharacterBetween(ctx context.Context, characterID uint, from, to time.Time) ([]entities.PickedSignup, error) {
	rows, err := r.q.GetPickedSignupsByCharacterBetween(ctx, sqlc_generated.GetPickedSignupsByCharacterBetweenParams{
		CharacterID: characterRefToInt8(entities.Booster{CharacterID: characterID}),
		FromTime:    timestamptz(from),
		ToTime:      timestamptz(to),
	})
	if err != nil {
		return nil, wrapErr(err, "get picked signups by character", nil, nil)
	}
	out := make([]entities.PickedSignup, len(rows))
	for i := range rows {
		out[i] = pickedByCharacterToDomain(rows[i])
	}
	return out, nil
}

func (r *SignupRepository) DeleteRegisteredByCharacterBetween(ctx context.Context, characterID uint, from, to time.Time, exceptID uint) ([]entities.Signup, error) {
	rows, err := r.q.DeleteRegisteredSignupsByCharacterBetween(ctx, sqlc_generated.DeleteRegisteredSignupsByCharacterBetweenParams{
		CharacterID: characterRefToInt8(entities.Booster{CharacterID: characterID}),
		ExceptID:    int64(exceptID),
		FromTime:    timestamptz(from),
		ToTime:      timestamptz(to),
	})
	if err != nil {
		return nil, wrapErr(err, "delete registered signups by character", nil, nil)
	}
	return signupsToDomain(rows), nil
}

func (r *SignupRepository) UpdateStatus(ctx context.Context, id uint, status domain.SignupStatus) error {
	n, err := r.q.UpdateSignupStatus(ctx, sqlc_generated.UpdateSignupStatusParams{
		ID:     int64(id),
		Status: string(status),
	})
	if err != nil {
		return wrapErr(err, "update signup status", nil, nil)
	}
	if n == 0 {
		return domain.ErrSignupNotFound
	}
	return nil
}

func (r *SignupRepository) Delete(ctx context.Context, id uint) error {
	n, err := r.q.DeleteSignup(ctx, int64(id))
	if err != nil {
		return wrapErr(err, "delete signup", nil, nil)
	}
	if n == 0 {
		return domain.ErrSignupNotFound
	}
	return nil
}

func signupsToDomain(rows []sqlc_generated.Signup) []entities.Signup {
	out := make([]entities.Signup, len(rows))
	for i := range rows {
		out[i] = signupToDomain(rows[i])
	}
	return out
}

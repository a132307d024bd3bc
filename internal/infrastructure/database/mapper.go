package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/infrastructure/database/sqlc_generated"
)

const uniqueViolation = "23505"

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func nullableID(id *uint) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: int64(*id), Valid: true}
}

func idPtr(v pgtype.Int8) *uint {
	if !v.Valid {
		return nil
	}
	id := uint(v.Int64)
	return &id
}

func characterRefToInt8(ref entities.CharacterRef) pgtype.Int8 {
	if id, ok := entities.BoundCharacter(ref); ok {
		return pgtype.Int8{Int64: int64(id), Valid: true}
	}
	return pgtype.Int8{}
}

// wrapErr maps driver errors to domain errors. notFound is returned for an
// empty result, duplicate for a unique constraint violation.
func wrapErr(err error, op string, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if duplicate != nil && errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return duplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func raidToDomain(r sqlc_generated.Raid) entities.Raid {
	return entities.Raid{
		ID:         uint(r.ID),
		MessageID:  r.MessageID,
		ChannelID:  r.ChannelID,
		LeadID:     r.LeadID,
		Title:      r.Title,
		Note:       r.Note,
		Difficulty: domain.Difficulty(r.Difficulty),
		LootMode:   domain.LootMode(r.LootMode),
		BossCount:  int(r.BossCount),
		StartsAt:   pgtypeTimestamptzToTime(r.StartsAt),
		PresetID:   idPtr(r.PresetID),
		CreatedAt:  pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt:  pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}

func presetToDomain(p sqlc_generated.RaidPreset) entities.Preset {
	return entities.Preset{
		ID:      uint(p.ID),
		Name:    p.Name,
		Tanks:   int(p.Tanks),
		Healers: int(p.Healers),
		DPS:     int(p.Dps),
	}
}

func characterToDomain(c sqlc_generated.Character) entities.Character {
	return entities.Character{
		ID:        uint(c.ID),
		UserID:    c.UserID,
		Name:      c.Name,
		Realm:     c.Realm,
		Class:     c.Class,
		CreatedAt: pgtypeTimestamptzToTime(c.CreatedAt),
	}
}

func signupToDomain(s sqlc_generated.Signup) entities.Signup {
	return entities.Signup{
		ID:        uint(s.ID),
		RaidID:    uint(s.RaidID),
		UserID:    s.UserID,
		Username:  s.Username,
		Character: entities.RefFromNullable(idPtr(s.CharacterID)),
		Role:      domain.Role(s.Role),
		Saved:     s.Saved,
		Note:      s.Note,
		Status:    domain.SignupStatus(s.Status),
		CreatedAt: pgtypeTimestamptzToTime(s.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(s.UpdatedAt),
	}
}

func pickedByUserToDomain(r sqlc_generated.GetPickedSignupsByUserBetweenRow) entities.PickedSignup {
	return entities.PickedSignup{
		Signup: signupToDomain(sqlc_generated.Signup{
			ID: r.ID, RaidID: r.RaidID, UserID: r.UserID, Username: r.Username,
			CharacterID: r.CharacterID, Role: r.Role, Saved: r.Saved, Note: r.Note,
			Status: r.Status, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		}),
		RaidStartsAt:   pgtypeTimestamptzToTime(r.RaidStartsAt),
		RaidDifficulty: domain.Difficulty(r.RaidDifficulty),
	}
}

func pickedByCharacterToDomain(r sqlc_generated.GetPickedSignupsByCharacterBetweenRow) entities.PickedSignup {
	return entities.PickedSignup{
		Signup: signupToDomain(sqlc_generated.Signup{
			ID: r.ID, RaidID: r.RaidID, UserID: r.UserID, Username: r.Username,
			CharacterID: r.CharacterID, Role: r.Role, Saved: r.Saved, Note: r.Note,
			Status: r.Status, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		}),
		RaidStartsAt:   pgtypeTimestamptzToTime(r.RaidStartsAt),
		RaidDifficulty: domain.Difficulty(r.RaidDifficulty),
	}
}

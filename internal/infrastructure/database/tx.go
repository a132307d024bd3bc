package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/ports/output"
)

var _ output.Transactor = (*Transactor)(nil)

// Transactor runs roster operations in a single read committed transaction.
// Consistency across concurrent operations comes from the advisory locks taken
// through LockUser and LockCharacter, which are released at commit or rollback.
type Transactor struct {
	pool *pgxpool.Pool
	q    *sqlc_generated.Queries
}

func NewTransactor(pool *pgxpool.Pool, q *sqlc_generated.Queries) *Transactor {
	return &Transactor{pool: pool, q: q}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx output.Tx) error) (err error) {
	pgTx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := pgTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(ctx, &txScope{q: t.q.WithTx(pgTx)}); err != nil {
		return err
	}
	if err = pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type txScope struct {
	q *sqlc_generated.Queries
}

func (s *txScope) Raids() output.RaidRepository           { return NewRaidRepository(s.q) }
func (s *txScope) Signups() output.SignupRepository       { return NewSignupRepository(s.q) }
func (s *txScope) Characters() output.CharacterRepository { return NewCharacterRepository(s.q) }
func (s *txScope) Presets() output.PresetRepository       { return NewPresetRepository(s.q) }

func (s *txScope) LockUser(ctx context.Context, userID string) error {
	if err := s.q.LockUserRoster(ctx, userID); err != nil {
		return fmt.Errorf("lock user %s: %w", userID, err)
	}
	return nil
}

func (s *txScope) LockCharacter(ctx context.Context, characterID uint) error {
	if err := s.q.LockCharacterRoster(ctx, characterLockKey(characterID)); err != nil {
		return fmt.Errorf("lock character %d: %w", characterID, err)
	}
	return nil
}

// characterLockKey maps a character id onto the int4 advisory lock key. Ids
// above MaxInt32 wrap around; two characters sharing a key only serialize
// with each other, they never skip a lock.
func characterLockKey(id uint) int32 {
	return int32(uint32(id))
}

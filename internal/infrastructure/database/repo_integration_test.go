package database

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/application"
	"raidbot/internal/domain"
	"raidbot/internal/domain/conflict"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/domain/entities"
	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/ports/output"
	"raidbot/pkg/tz"
)

// These tests need a disposable PostgreSQL database:
//
//	RAIDBOT_TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/database/
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("RAIDBOT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("RAIDBOT_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, RunMigrations(dsn, zerolog.Nop()))
	pool, err := NewPool(ctx, dsn, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	_, err = pool.Exec(ctx, "TRUNCATE signups, characters, raids, raid_presets RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return pool
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	q := sqlc_generated.New(pool)
	raids, signups, chars := NewRaidRepository(q), NewSignupRepository(q), NewCharacterRepository(q)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	raid := &entities.Raid{LeadID: "lead", Title: "Nerub", Difficulty: domain.DifficultyHeroic, LootMode: domain.LootSaved, BossCount: 8, StartsAt: start}
	require.NoError(t, raids.Create(ctx, raid))
	other := &entities.Raid{LeadID: "lead", Title: "Nerub 2", Difficulty: domain.DifficultyHeroic, LootMode: domain.LootSaved, BossCount: 8, StartsAt: start.Add(time.Hour)}
	require.NoError(t, raids.Create(ctx, other))

	char := &entities.Character{UserID: "u1", Name: "Thrall", Realm: "Hyjal"}
	require.NoError(t, chars.Create(ctx, char))
	err := chars.Create(ctx, &entities.Character{UserID: "u1", Name: "thrall", Realm: "HYJAL"})
	assert.ErrorIs(t, err, domain.ErrCharacterExists)

	picked := &entities.Signup{RaidID: raid.ID, UserID: "u1", Character: entities.Booster{CharacterID: char.ID}, Role: domain.RoleDPS, Status: domain.StatusPicked}
	require.NoError(t, signups.Create(ctx, picked))
	dup := &entities.Signup{RaidID: raid.ID, UserID: "u1", Character: entities.Booster{CharacterID: char.ID}, Role: domain.RoleTank, Status: domain.StatusRegistered}
	assert.ErrorIs(t, signups.Create(ctx, dup), domain.ErrSignupExists)

	// flex signups are not constrained by the character index
	for i := 0; i < 2; i++ {
		require.NoError(t, signups.Create(ctx, &entities.Signup{RaidID: raid.ID, UserID: "u2", Character: entities.Flex{}, Role: domain.RoleDPS, Status: domain.StatusRegistered}))
	}

	registered := &entities.Signup{RaidID: other.ID, UserID: "u1", Character: entities.Booster{CharacterID: char.ID}, Role: domain.RoleDPS, Status: domain.StatusRegistered}
	require.NoError(t, signups.Create(ctx, registered))

	byUser, err := signups.FindPickedByUserBetween(ctx, "u1", start, start)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, picked.ID, byUser[0].ID)
	assert.True(t, byUser[0].RaidStartsAt.Equal(start))
	assert.Equal(t, domain.DifficultyHeroic, byUser[0].RaidDifficulty)

	byChar, err := signups.FindPickedByCharacterBetween(ctx, char.ID, start.Add(-time.Hour), start)
	require.NoError(t, err)
	assert.Empty(t, byChar, "upper bound is exclusive")

	removed, err := signups.DeleteRegisteredByCharacterBetween(ctx, char.ID, start.Add(-time.Hour), start.Add(24*time.Hour), picked.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, registered.ID, removed[0].ID)

	_, err = signups.FindByID(ctx, registered.ID)
	assert.ErrorIs(t, err, domain.ErrSignupNotFound)

	require.NoError(t, chars.Delete(ctx, char.ID))
	_, err = signups.FindByID(ctx, picked.ID)
	assert.ErrorIs(t, err, domain.ErrSignupNotFound, "character delete cascades")

	require.NoError(t, raids.Delete(ctx, raid.ID))
	left, err := signups.FindByRaidID(ctx, raid.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.ErrorIs(t, raids.Delete(ctx, raid.ID), domain.ErrRaidNotFound)
}

func TestTransactorRollsBackAndSerializes(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	q := sqlc_generated.New(pool)
	tr := NewTransactor(pool, q)

	raid := &entities.Raid{LeadID: "lead", Title: "Nerub", Difficulty: domain.DifficultyHeroic, LootMode: domain.LootSaved, BossCount: 8, StartsAt: time.Now().Add(time.Hour)}
	err := tr.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
		require.NoError(t, tx.Raids().Create(ctx, raid))
		return domain.ErrNotManager
	})
	assert.ErrorIs(t, err, domain.ErrNotManager)
	_, err = NewRaidRepository(q).FindByID(ctx, raid.ID)
	assert.ErrorIs(t, err, domain.ErrRaidNotFound)

	// Two transactions locking the same user run one after the other.
	var (
		mu    sync.Mutex
		order []string
		wg    sync.WaitGroup
	)
	for _, name := range []string{"a", "b"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			err := tr.WithinTx(ctx, func(ctx context.Context, tx output.Tx) error {
				if err := tx.LockUser(ctx, "u1"); err != nil {
					return err
				}
				if err := tx.LockCharacter(ctx, 1); err != nil {
					return err
				}
				mu.Lock()
				order = append(order, name+":in")
				mu.Unlock()
				time.Sleep(50 * time.Millisecond)
				mu.Lock()
				order = append(order, name+":out")
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()
	require.Len(t, order, 4)
	assert.Equal(t, order[0][:1], order[1][:1], "critical sections must not interleave")
}

// Two leads picking the same player into overlapping raids at the same time:
// the user lock serializes the picks, so the second one sees the first.
func TestConcurrentConflictingPicks(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	q := sqlc_generated.New(pool)
	raids, signups, chars := NewRaidRepository(q), NewSignupRepository(q), NewCharacterRepository(q)

	cycles, err := cycle.New(time.Wednesday, 5, tz.Paris)
	require.NoError(t, err)
	svc := application.NewSignupService(NewTransactor(pool, q), signups, conflict.NewEngine(cycles, 90*time.Minute),
		cycles, application.StaffAuthority{}, nil, zerolog.Nop())

	start := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	var targets []uint
	for n, name := range []string{"Thrall", "Jaina"} {
		raid := &entities.Raid{LeadID: "lead", Title: name, Difficulty: domain.DifficultyHeroic, LootMode: domain.LootSaved,
			BossCount: 8, StartsAt: start.Add(time.Duration(n) * time.Hour)}
		require.NoError(t, raids.Create(ctx, raid))
		char := &entities.Character{UserID: "u1", Name: name, Realm: "Hyjal"}
		require.NoError(t, chars.Create(ctx, char))
		su := &entities.Signup{RaidID: raid.ID, UserID: "u1", Character: entities.Booster{CharacterID: char.ID},
			Role: domain.RoleDPS, Status: domain.StatusRegistered}
		require.NoError(t, signups.Create(ctx, su))
		targets = append(targets, su.ID)
	}

	var (
		wg    sync.WaitGroup
		ready = make(chan struct{})
		errs  = make([]error, len(targets))
	)
	for n, id := range targets {
		wg.Add(1)
		go func(n int, id uint) {
			defer wg.Done()
			<-ready
			_, errs[n] = svc.PickSignup(ctx, id, entities.Actor{UserID: "lead"})
		}(n, id)
	}
	close(ready)
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		ce, isConflict := domain.AsConflict(err)
		require.True(t, isConflict, "unexpected error: %v", err)
		assert.Equal(t, domain.ReasonTimeConflict, ce.Reason)
		conflicts++
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)

	picked, err := signups.FindPickedByUserBetween(ctx, "u1", start.Add(-2*time.Hour), start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, picked, 1)
}

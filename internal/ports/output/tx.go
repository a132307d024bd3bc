package output

import "context"

// Tx exposes the repositories bound to one transaction plus the roster locks.
type Tx interface {
	Raids() RaidRepository
	Signups() SignupRepository
	Characters() CharacterRepository
	Presets() PresetRepository

	// LockUser serializes roster changes of one user until the transaction ends.
	LockUser(ctx context.Context, userID string) error
	// LockCharacter serializes roster changes of one character. Take it after
	// LockUser.
	LockCharacter(ctx context.Context, characterID uint) error
}

// Transactor runs fn atomically: either every write made through tx is
// committed, or none is.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

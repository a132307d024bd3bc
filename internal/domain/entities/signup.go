package entities

import (
	"time"

	"raidbot/internal/domain"
)

// CharacterRef says what occupies a signup's roster slot: a specific character
// (Booster) or nobody in particular (Flex, a loot-only participant).
// The set of implementations is closed.
type CharacterRef interface {
	isCharacterRef()
}

// Booster binds a signup to a character.
type Booster struct {
	CharacterID uint
}

// Flex is a characterless signup.
type Flex struct{}

func (Booster) isCharacterRef() {}
func (Flex) isCharacterRef()    {}

// BoundCharacter returns the character id of ref and true for a Booster.
func BoundCharacter(ref CharacterRef) (uint, bool) {
	switch r := ref.(type) {
	case Booster:
		return r.CharacterID, true
	case *Booster:
		if r != nil {
			return r.CharacterID, true
		}
	}
	return 0, false
}

// RefFromNullable builds a CharacterRef from a nullable column value.
func RefFromNullable(id *uint) CharacterRef {
	if id == nil {
		return Flex{}
	}
	return Booster{CharacterID: *id}
}

type Signup struct {
	ID        uint
	RaidID    uint
	UserID    string
	Username  string
	Character CharacterRef
	Role      domain.Role
	Saved     bool
	Note      string
	Status    domain.SignupStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CharacterID returns the bound character id, or 0 and false for flex signups.
func (s *Signup) CharacterID() (uint, bool) {
	return BoundCharacter(s.Character)
}

func (s *Signup) IsBooster() bool {
	_, ok := s.CharacterID()
	return ok
}

func (s *Signup) IsPicked() bool {
	return s.Status == domain.StatusPicked
}

// PickedSignup is a picked signup joined with the scheduling data of its raid.
type PickedSignup struct {
	Signup
	RaidStartsAt   time.Time
	RaidDifficulty domain.Difficulty
}

package domain

import "strings"

// SignupStatus is the lifecycle state of a signup.
type SignupStatus string

const (
	StatusRegistered SignupStatus = "registered"
	StatusPicked     SignupStatus = "picked"
)

func (s SignupStatus) Valid() bool {
	return s == StatusRegistered || s == StatusPicked
}

// ParseSignupStatus validates a raw status coming from an adapter.
// An empty string means registered.
func ParseSignupStatus(raw string) (SignupStatus, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return StatusRegistered, nil
	}
	s := SignupStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Role is the role classification of a signup.
type Role string

const (
	RoleTank   Role = "tank"
	RoleHealer Role = "healer"
	RoleDPS    Role = "dps"
)

// Roles lists every role in display order.
var Roles = []Role{RoleTank, RoleHealer, RoleDPS}

func (r Role) Valid() bool {
	switch r {
	case RoleTank, RoleHealer, RoleDPS:
		return true
	}
	return false
}

func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Difficulty is the raid difficulty tier.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHeroic Difficulty = "heroic"
	DifficultyMythic Difficulty = "mythic"
)

var Difficulties = []Difficulty{DifficultyNormal, DifficultyHeroic, DifficultyMythic}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyNormal, DifficultyHeroic, DifficultyMythic:
		return true
	}
	return false
}

// ParseDifficulty accepts the full names and the usual short forms (NM, HC, MM).
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal", "nm":
		return DifficultyNormal, nil
	case "heroic", "hc":
		return DifficultyHeroic, nil
	case "mythic", "mm":
		return DifficultyMythic, nil
	}
	return "", ErrInvalidDifficulty
}

// LootMode is the loot distribution mode of a raid.
type LootMode string

const (
	LootSaved   LootMode = "saved"
	LootUnsaved LootMode = "unsaved"
	LootVIP     LootMode = "vip"
)

var LootModes = []LootMode{LootSaved, LootUnsaved, LootVIP}

func (l LootMode) Valid() bool {
	switch l {
	case LootSaved, LootUnsaved, LootVIP:
		return true
	}
	return false
}

func ParseLootMode(raw string) (LootMode, error) {
	l := LootMode(strings.ToLower(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", ErrInvalidLootMode
	}
	return l, nil
}

// Tier is the privilege tier of an acting user, independent of raid leadership.
type Tier int

const (
	TierMember Tier = iota
	TierAdmin
	TierOwner
)

// Elevated reports whether the tier supersedes plain organizer rights.
func (t Tier) Elevated() bool {
	return t >= TierAdmin
}

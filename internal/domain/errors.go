package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Every domain error unwraps to exactly one of them so callers can
// map failures with errors.Is without knowing the concrete error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("roster conflict")
	ErrDuplicate  = errors.New("already exists")
)

// Error is a coded domain error. Code is stable and used as the i18n key suffix.
type Error struct {
	kind error
	code string
	msg  string
}

func newError(kind error, code, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }
func (e *Error) Code() string  { return e.code }

// Domain errors.
var (
	ErrRaidNotFound      = newError(ErrNotFound, "raid_not_found", "raid non trouvé")
	ErrSignupNotFound    = newError(ErrNotFound, "signup_not_found", "inscription non trouvée")
	ErrCharacterNotFound = newError(ErrNotFound, "character_not_found", "personnage non trouvé")
	ErrPresetNotFound    = newError(ErrNotFound, "preset_not_found", "preset non trouvé")

	ErrNotManager        = newError(ErrForbidden, "not_manager", "seul le lead du raid ou un admin peut effectuer cette action")
	ErrNotCharacterOwner = newError(ErrForbidden, "not_character_owner", "ce personnage appartient à un autre joueur")

	ErrSignupExists    = newError(ErrDuplicate, "signup_exists", "ce personnage est déjà inscrit à ce raid")
	ErrCharacterExists = newError(ErrDuplicate, "character_exists", "ce personnage existe déjà")
	ErrPresetExists    = newError(ErrDuplicate, "preset_exists", "ce preset existe déjà")

	ErrCharacterRequired = newError(ErrValidation, "character_required", "un personnage est requis pour une inscription booster")
	ErrInvalidRole       = newError(ErrValidation, "invalid_role", "rôle invalide")
	ErrInvalidStatus     = newError(ErrValidation, "invalid_status", "statut invalide")
	ErrInvalidDifficulty = newError(ErrValidation, "invalid_difficulty", "difficulté invalide")
	ErrInvalidLootMode   = newError(ErrValidation, "invalid_loot_mode", "mode de loot invalide")
	ErrInvalidBossCount  = newError(ErrValidation, "invalid_boss_count", "nombre de boss invalide")
	ErrTitleRequired     = newError(ErrValidation, "title_required", "un titre est requis")
	ErrDateTimeInPast    = newError(ErrValidation, "datetime_in_past", "la date et l'heure doivent être dans le futur")
	ErrInvalidDateTime   = newError(ErrValidation, "invalid_datetime", "date ou heure invalide")
	ErrCharacterName     = newError(ErrValidation, "character_name_required", "le nom et le royaume du personnage sont requis")
	ErrInvalidPreset     = newError(ErrValidation, "invalid_preset", "preset invalide")
)

// ConflictReason is the machine-readable reason a signup cannot be picked.
type ConflictReason string

const (
	ReasonAlreadyBoosterInEvent ConflictReason = "ALREADY_BOOSTER_IN_EVENT"
	ReasonCharPickedInCycle     ConflictReason = "CHAR_ALREADY_PICKED_IN_CYCLE_SAME_DIFFICULTY"
	ReasonTimeConflict          ConflictReason = "TIME_CONFLICT"
)

// ConflictError is returned when a roster admission rule rejects a pick.
type ConflictError struct {
	Reason ConflictReason
	// SignupID and RaidID identify the already picked signup that blocks the pick.
	SignupID    uint
	RaidID      uint
	WindowStart time.Time
	WindowEnd   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("roster conflict %s (signup=%d, raid=%d)", e.Reason, e.SignupID, e.RaidID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
func (e *ConflictError) Code() string  { return string(e.Reason) }

// Metadata exposes the conflict context for message templates.
func (e *ConflictError) Metadata() map[string]any {
	return map[string]any{
		"Reason":      string(e.Reason),
		"SignupID":    e.SignupID,
		"RaidID":      e.RaidID,
		"WindowStart": e.WindowStart,
		"WindowEnd":   e.WindowEnd,
	}
}

// Code extracts the domain error code from err, or "" when err carries none.
func Code(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// AsConflict returns the ConflictError wrapped in err, if any.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

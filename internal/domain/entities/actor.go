package entities

import "raidbot/internal/domain"

// Actor is the user performing an operation.
type Actor struct {
	UserID string
	Tier   domain.Tier
}

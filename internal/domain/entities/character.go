package entities

import "time"

// Character belongs to exactly one user and is unique per (user, name, realm).
type Character struct {
	ID        uint
	UserID    string
	Name      string
	Realm     string
	Class     string
	CreatedAt time.Time
}

// Label is the "Name-Realm" form players use in game.
func (c Character) Label() string {
	return c.Name + "-" + c.Realm
}

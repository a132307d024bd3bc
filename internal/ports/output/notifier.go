package output

import (
	"context"

	"raidbot/internal/domain/entities"
)

// RaidNotifier refreshes the external representation of a raid (its Discord
// post). Calls are best effort.
type RaidNotifier interface {
	NotifyRaid(ctx context.Context, raidID uint) error
}

// Authority decides whether actor may manage raid.
type Authority interface {
	MayManage(actor entities.Actor, raid *entities.Raid) bool
}

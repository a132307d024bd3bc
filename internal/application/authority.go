package application

import (
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/output"
)

var _ output.Authority = StaffAuthority{}

// StaffAuthority lets the raid lead, admins and owners manage a raid.
type StaffAuthority struct{}

func (StaffAuthority) MayManage(actor entities.Actor, raid *entities.Raid) bool {
	if raid == nil || actor.UserID == "" {
		return false
	}
	return actor.Tier.Elevated() || actor.UserID == raid.LeadID
}

package discord

import (
	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
)

type staffRoles struct {
	admin string
	owner string
}

// tier derives the privilege tier of a guild member from its roles and
// permissions. The guild owner is handled by the caller.
func (r staffRoles) tier(member *discordgo.Member) domain.Tier {
	if member == nil {
		return domain.TierMember
	}
	t := domain.TierMember
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		t = domain.TierAdmin
	}
	for _, role := range member.Roles {
		switch {
		case r.owner != "" && role == r.owner:
			return domain.TierOwner
		case r.admin != "" && role == r.admin:
			t = domain.TierAdmin
		}
	}
	return t
}

// interactionUser returns the author of an interaction, in a guild or in DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if u := interactionUser(i); u != nil {
		return u.ID
	}
	return ""
}

// actor builds the acting user of an interaction.
func (h *Handler) actor(s *discordgo.Session, i *discordgo.InteractionCreate) entities.Actor {
	a := entities.Actor{UserID: interactionUserID(i), Tier: h.roles.tier(i.Member)}
	if a.Tier != domain.TierOwner && s != nil && s.State != nil && i.GuildID != "" {
		if g, err := s.State.Guild(i.GuildID); err == nil && g.OwnerID == a.UserID {
			a.Tier = domain.TierOwner
		}
	}
	return a
}

package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	pkgdiscord "raidbot/pkg/discord"
)

const (
	btnSignupPrefix = "btn_signup_"
	btnLeavePrefix  = "btn_leave_"
	btnManagePrefix = "btn_manage_"
	btnDeletePrefix = "btn_delete_"
)

// raidComponents are the buttons under a raid post. Custom IDs carry the raid
// id so handlers do not depend on the message.
func raidComponents(raidID uint) []discordgo.MessageComponent {
	id := strconv.FormatUint(uint64(raidID), 10)
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "S'inscrire", Style: discordgo.SuccessButton, CustomID: btnSignupPrefix + id},
			discordgo.Button{Label: "Se désister", Style: discordgo.DangerButton, CustomID: btnLeavePrefix + id},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "⚙️ Gérer le roster", Style: discordgo.SecondaryButton, CustomID: btnManagePrefix + id},
			discordgo.Button{Label: "🗑️ Supprimer", Style: discordgo.DangerButton, CustomID: btnDeletePrefix + id},
		}},
	}
}

// parseIDSuffix extracts the numeric id following prefix in a custom ID or a
// select value.
func parseIDSuffix(value, prefix string) (uint, bool) {
	idStr, ok := strings.CutPrefix(value, prefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func rosterView(summary *input.RosterSummary, loc *time.Location) pkgdiscord.RosterView {
	raid := summary.Raid
	return pkgdiscord.RosterView{
		Raid:       &raid,
		Preset:     summary.Preset,
		Picked:     summary.Picked,
		Registered: summary.Registered,
		Characters: summary.Characters,
		Location:   loc,
	}
}

// publishRaid posts the roster message of a fresh raid in the raid channel and
// records where it lives.
func (h *Handler) publishRaid(ctx context.Context, s *discordgo.Session, raid *entities.Raid) error {
	summary, err := h.raidUseCase.Roster(ctx, raid.ID)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	msg, err := s.ChannelMessageSendComplex(h.raidChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildRosterEmbed(rosterView(summary, h.loc))},
		Components: raidComponents(raid.ID),
	})
	if err != nil {
		return fmt.Errorf("send raid message: %w", err)
	}
	if err := h.raidUseCase.AttachMessage(ctx, raid.ID, msg.ChannelID, msg.ID); err != nil {
		return fmt.Errorf("attach raid message: %w", err)
	}
	raid.ChannelID, raid.MessageID = msg.ChannelID, msg.ID
	return nil
}

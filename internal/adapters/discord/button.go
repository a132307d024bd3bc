package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	pkgdiscord "raidbot/pkg/discord"
)

const (
	selectPick   = "select_pick"
	selectUnpick = "select_unpick"

	pickValuePrefix   = "pick_"
	unpickValuePrefix = "unpick_"

	// maxSelectOptions is the Discord limit of options per select menu.
	maxSelectOptions = 25
)

func signupOption(su entities.Signup, chars map[uint]entities.Character, prefix string) discordgo.SelectMenuOption {
	label := su.Username
	if label == "" {
		label = su.UserID
	}
	desc := pkgdiscord.SignupLabel(su, chars) + " • " + string(su.Role)
	if su.Saved {
		desc += " • saved"
	}
	return discordgo.SelectMenuOption{
		Label:       label,
		Value:       prefix + strconv.FormatUint(uint64(su.ID), 10),
		Description: desc,
	}
}

// manageComponents builds the pick and unpick menus of a roster. A menu is
// omitted when it has nothing to offer.
func manageComponents(summary *input.RosterSummary) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	if opts := signupOptions(summary.Registered, summary.Characters, pickValuePrefix); len(opts) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: selectPick, Placeholder: "Ajouter au roster", Options: opts},
		}})
	}
	if opts := signupOptions(summary.Picked, summary.Characters, unpickValuePrefix); len(opts) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: selectUnpick, Placeholder: "Retirer du roster", Options: opts},
		}})
	}
	return rows
}

func signupOptions(signups []entities.Signup, chars map[uint]entities.Character, prefix string) []discordgo.SelectMenuOption {
	n := min(len(signups), maxSelectOptions)
	opts := make([]discordgo.SelectMenuOption, 0, n)
	for _, su := range signups[:n] {
		opts = append(opts, signupOption(su, chars, prefix))
	}
	return opts
}

// HandleManage shows the roster menus of a raid to its managers.
func (h *Handler) HandleManage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raidID, ok := parseIDSuffix(i.MessageComponentData().CustomID, btnManagePrefix)
	if !ok {
		return
	}
	ctx, cancel := h.opContext()
	defer cancel()

	summary, err := h.raidUseCase.Roster(ctx, raidID)
	if err != nil {
		h.respondError(s, i, "manage", err)
		return
	}
	if !h.raidUseCase.MayManage(h.actor(s, i), &summary.Raid) {
		h.respondError(s, i, "manage", domain.ErrNotManager)
		return
	}
	components := manageComponents(summary)
	if len(components) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(i, "info.roster_empty", nil))
		return
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    h.translate(i, "ui.manage_prompt", map[string]any{"Title": summary.Raid.Title}),
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	})
}

// HandleDelete deletes a raid and its post.
func (h *Handler) HandleDelete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raidID, ok := parseIDSuffix(i.MessageComponentData().CustomID, btnDeletePrefix)
	if !ok {
		return
	}
	ctx, cancel := h.opContext()
	defer cancel()

	raid, err := h.raidUseCase.DeleteRaid(ctx, raidID, h.actor(s, i))
	if err != nil {
		h.respondError(s, i, "delete_raid", err)
		return
	}
	if raid.HasPost() {
		if err := s.ChannelMessageDelete(raid.ChannelID, raid.MessageID); err != nil {
			h.log.Warn().Err(err).Uint("raid_id", raid.ID).Msg("⚠️ Suppression du message du raid impossible")
		}
	}
	respondEphemeral(s, i.Interaction, h.translate(i, "info.raid_deleted", map[string]any{"Title": raid.Title, "ID": fmt.Sprint(raid.ID)}))
}

package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	pkgdiscord "raidbot/pkg/discord"
)

const signupModalPrefix = "signup_modal_"

// signupRequest is a signup as typed by a user, before character resolution.
type signupRequest struct {
	raidID    uint
	character string
	role      string
	saved     bool
	note      string
	picked    bool
}

// isFlexInput reports whether raw designates a characterless signup.
func isFlexInput(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "flex", "loot":
		return true
	}
	return false
}

// resolveCharacter finds raw among chars, by "Name-Realm" label or by name
// when the name alone is unambiguous. Matching ignores case.
func resolveCharacter(chars []entities.Character, raw string) (*entities.Character, error) {
	raw = strings.TrimSpace(raw)
	var byName []int
	for idx := range chars {
		if strings.EqualFold(chars[idx].Label(), raw) {
			return &chars[idx], nil
		}
		if strings.EqualFold(chars[idx].Name, raw) {
			byName = append(byName, idx)
		}
	}
	if len(byName) == 1 {
		return &chars[byName[0]], nil
	}
	return nil, domain.ErrCharacterNotFound
}

func parseYesNo(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "oui", "o", "yes", "y", "1", "true", "saved":
		return true
	}
	return false
}

// HandleSignupCommand handles /signup.
func (h *Handler) HandleSignupCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := commandOptions(data.Options)
	h.submitSignup(s, i, signupRequest{
		raidID:    uint(optInt(opts, "raid")),
		character: optString(opts, "character"),
		role:      optString(opts, "role"),
		saved:     optBool(opts, "saved"),
		note:      optString(opts, "note"),
		picked:    optBool(opts, "picked"),
	})
}

// HandleSignupButton opens the signup modal of the raid behind the button.
func (h *Handler) HandleSignupButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raidID, ok := parseIDSuffix(i.MessageComponentData().CustomID, btnSignupPrefix)
	if !ok {
		return
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: signupModalPrefix + strconv.FormatUint(uint64(raidID), 10),
			Title:    h.translate(i, "ui.signup_modal_title", nil),
			Components: []discordgo.MessageComponent{
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "character", Label: "Personnage (Nom-Royaume)", Style: discordgo.TextInputShort, Required: false, Placeholder: "Vide ou flex = place loot sans perso"}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "role", Label: "Rôle", Style: discordgo.TextInputShort, Required: true, Placeholder: "tank, healer ou dps"}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "saved", Label: "Déjà saved ?", Style: discordgo.TextInputShort, Required: false, Placeholder: "oui / non"}),
				pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: "note", Label: "Note", Style: discordgo.TextInputShort, Required: false, MaxLength: 200}),
			},
		},
	})
}

func (h *Handler) handleSignupModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	raidID, ok := parseIDSuffix(data.CustomID, signupModalPrefix)
	if !ok {
		return
	}
	values := pkgdiscord.ModalValues(data)
	h.submitSignup(s, i, signupRequest{
		raidID:    raidID,
		character: values["character"],
		role:      values["role"],
		saved:     parseYesNo(values["saved"]),
		note:      values["note"],
	})
}

// buildSignupInput resolves a typed request into a use case input.
func (h *Handler) buildSignupInput(ctx context.Context, userID, username string, req signupRequest) (input.CreateSignupInput, *entities.Character, error) {
	role, err := domain.ParseRole(req.role)
	if err != nil {
		return input.CreateSignupInput{}, nil, err
	}
	in := input.CreateSignupInput{
		RaidID:   req.raidID,
		UserID:   userID,
		Username: username,
		Role:     role,
		Saved:    req.saved,
		Note:     strings.TrimSpace(req.note),
		Status:   domain.StatusRegistered,
	}
	if req.picked {
		in.Status = domain.StatusPicked
	}
	if isFlexInput(req.character) {
		return in, nil, nil
	}
	chars, err := h.characterUseCase.ListCharacters(ctx, userID)
	if err != nil {
		return input.CreateSignupInput{}, nil, err
	}
	char, err := resolveCharacter(chars, req.character)
	if err != nil {
		return input.CreateSignupInput{}, nil, err
	}
	in.Booster = true
	in.CharacterID = char.ID
	return in, char, nil
}

func (h *Handler) submitSignup(s *discordgo.Session, i *discordgo.InteractionCreate, req signupRequest) {
	h.createSignup(s, i, req, h.actor(s, i))
}

func (h *Handler) createSignup(r interactionResponder, i *discordgo.InteractionCreate, req signupRequest, actor entities.Actor) {
	deferEphemeral(r, i.Interaction)
	ctx, cancel := h.opContext()
	defer cancel()

	in, char, err := h.buildSignupInput(ctx, interactionUserID(i), interactionDisplayName(i), req)
	if err != nil {
		editReply(r, i.Interaction, h.errorMessage(i, "signup", err))
		return
	}
	signup, err := h.signupUseCase.CreateSignup(ctx, in, actor)
	if err != nil {
		editReply(r, i.Interaction, h.errorMessage(i, "signup", err))
		return
	}

	label := "Flex"
	if char != nil {
		label = char.Label()
	}
	key := "info.signup_created"
	switch {
	case signup.IsPicked():
		key = "info.signup_created_picked"
	case req.picked:
		key = "info.signup_created_not_picked"
	}
	editReply(r, i.Interaction, h.translate(i, key, map[string]any{
		"Character": label,
		"Role":      string(signup.Role),
		"RaidID":    signup.RaidID,
	}))
}

// HandleLeave removes every signup of the user in the raid behind the button.
func (h *Handler) HandleLeave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	raidID, ok := parseIDSuffix(i.MessageComponentData().CustomID, btnLeavePrefix)
	if !ok {
		return
	}
	h.leave(s, i, raidID)
}

func (h *Handler) leave(r interactionResponder, i *discordgo.InteractionCreate, raidID uint) {
	deferEphemeral(r, i.Interaction)
	ctx, cancel := h.opContext()
	defer cancel()

	signups, err := h.signupUseCase.SignupsForUser(ctx, raidID, interactionUserID(i))
	if err != nil {
		editReply(r, i.Interaction, h.errorMessage(i, "leave", err))
		return
	}
	if len(signups) == 0 {
		editReply(r, i.Interaction, h.translate(i, "info.not_signed_up", nil))
		return
	}
	removed := 0
	for _, su := range signups {
		if err := h.signupUseCase.RemoveSignup(ctx, su.ID); err != nil && !errorsIsNotFound(err) {
			editReply(r, i.Interaction, h.errorMessage(i, "leave", err))
			return
		}
		removed++
	}
	editReply(r, i.Interaction, h.translate(i, "info.left_raid", map[string]any{"Count": removed}))
}

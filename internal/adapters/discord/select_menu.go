package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain/entities"
)

func selectedSignupID(i *discordgo.InteractionCreate, prefix string) (uint, bool) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return 0, false
	}
	return parseIDSuffix(data.Values[0], prefix)
}

// HandlePick admits the selected signup into the roster.
func (h *Handler) HandlePick(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := selectedSignupID(i, pickValuePrefix)
	if !ok {
		return
	}
	h.pick(s, i, id, h.actor(s, i))
}

// HandleUnpick moves the selected signup back to registered.
func (h *Handler) HandleUnpick(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := selectedSignupID(i, unpickValuePrefix)
	if !ok {
		return
	}
	h.unpick(s, i, id, h.actor(s, i))
}

func (h *Handler) pick(r interactionResponder, i *discordgo.InteractionCreate, id uint, actor entities.Actor) {
	h.changeStatus(r, i, "pick", "info.signup_picked", func(ctx context.Context) (*entities.Signup, error) {
		return h.signupUseCase.PickSignup(ctx, id, actor)
	})
}

func (h *Handler) unpick(r interactionResponder, i *discordgo.InteractionCreate, id uint, actor entities.Actor) {
	h.changeStatus(r, i, "unpick", "info.signup_unpicked", func(ctx context.Context) (*entities.Signup, error) {
		return h.signupUseCase.UnpickSignup(ctx, id, actor)
	})
}

// changeStatus defers the reply, runs op and reports its outcome.
func (h *Handler) changeStatus(r interactionResponder, i *discordgo.InteractionCreate, opName, key string, op func(context.Context) (*entities.Signup, error)) {
	deferEphemeral(r, i.Interaction)
	ctx, cancel := h.opContext()
	defer cancel()

	signup, err := op(ctx)
	if err != nil {
		editReply(r, i.Interaction, h.errorMessage(i, opName, err))
		return
	}
	editReply(r, i.Interaction, h.translate(i, key, signupData(signup)))
}

func signupData(su *entities.Signup) map[string]any {
	name := su.Username
	if name == "" {
		name = su.UserID
	}
	return map[string]any{"User": name, "Role": string(su.Role), "RaidID": su.RaidID}
}

package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
)

// callLog records responder and use case calls in order.
type callLog struct{ calls []string }

type fakeResponder struct{ log *callLog }

func (f fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	if resp.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource {
		f.log.calls = append(f.log.calls, "defer")
	} else {
		f.log.calls = append(f.log.calls, "respond")
	}
	return nil
}

func (f fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.log.calls = append(f.log.calls, "edit:"+*edit.Content)
	return &discordgo.Message{}, nil
}

type fakeSignups struct {
	input.SignupUseCase
	log  *callLog
	err  error
	mine []entities.Signup
}

func (f fakeSignups) record(op string, id uint) (*entities.Signup, error) {
	f.log.calls = append(f.log.calls, op)
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Signup{ID: id, RaidID: 3, UserID: "u1", Username: "Bob", Role: domain.RoleTank}, nil
}

func (f fakeSignups) PickSignup(_ context.Context, id uint, _ entities.Actor) (*entities.Signup, error) {
	return f.record("pick", id)
}

func (f fakeSignups) UnpickSignup(_ context.Context, id uint, _ entities.Actor) (*entities.Signup, error) {
	return f.record("unpick", id)
}

func (f fakeSignups) CreateSignup(_ context.Context, in input.CreateSignupInput, _ entities.Actor) (*entities.Signup, error) {
	return f.record("create", 1)
}

func (f fakeSignups) SignupsForUser(context.Context, uint, string) ([]entities.Signup, error) {
	return f.mine, nil
}

func (f fakeSignups) RemoveSignup(_ context.Context, id uint) error {
	_, err := f.record("remove", id)
	return err
}

func newDeferredHandler(signups fakeSignups) *Handler {
	return NewHandler(nil, signups, fakeCharacters{}, keyT{}, HandlerConfig{}, zerolog.Nop())
}

func testInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "u1", Username: "Bob"}},
	}}
}

func TestPickAcknowledgesBeforeRunning(t *testing.T) {
	log := &callLog{}
	h := newDeferredHandler(fakeSignups{log: log})

	h.pick(fakeResponder{log: log}, testInteraction(), 7, entities.Actor{UserID: "lead"})
	assert.Equal(t, []string{"defer", "pick", "edit:info.signup_picked"}, log.calls)

	log.calls = nil
	h.unpick(fakeResponder{log: log}, testInteraction(), 7, entities.Actor{UserID: "lead"})
	assert.Equal(t, []string{"defer", "unpick", "edit:info.signup_unpicked"}, log.calls)
}

func TestPickConflictIsReportedInDeferredReply(t *testing.T) {
	log := &callLog{}
	h := newDeferredHandler(fakeSignups{log: log, err: &domain.ConflictError{Reason: domain.ReasonTimeConflict, RaidID: 2}})

	h.pick(fakeResponder{log: log}, testInteraction(), 7, entities.Actor{UserID: "lead"})
	require.Len(t, log.calls, 3)
	assert.Equal(t, "defer", log.calls[0])
	assert.Equal(t, "edit:❌ errors.TIME_CONFLICT", log.calls[2])
}

func TestCreateSignupAcknowledgesBeforeRunning(t *testing.T) {
	log := &callLog{}
	h := newDeferredHandler(fakeSignups{log: log})

	h.createSignup(fakeResponder{log: log}, testInteraction(), signupRequest{raidID: 3, role: "tank"}, entities.Actor{UserID: "u1"})
	assert.Equal(t, []string{"defer", "create", "edit:info.signup_created"}, log.calls)

	log.calls = nil
	h.createSignup(fakeResponder{log: log}, testInteraction(), signupRequest{raidID: 3, role: "bard"}, entities.Actor{UserID: "u1"})
	assert.Equal(t, []string{"defer", "edit:❌ errors.invalid_role"}, log.calls)
}

func TestLeaveAcknowledgesBeforeRemoving(t *testing.T) {
	log := &callLog{}
	h := newDeferredHandler(fakeSignups{log: log, mine: []entities.Signup{{ID: 4}, {ID: 5}}})

	h.leave(fakeResponder{log: log}, testInteraction(), 3)
	assert.Equal(t, []string{"defer", "remove", "remove", "edit:info.left_raid"}, log.calls)

	log.calls = nil
	h = newDeferredHandler(fakeSignups{log: log})
	h.leave(fakeResponder{log: log}, testInteraction(), 3)
	assert.Equal(t, []string{"defer", "edit:info.not_signed_up"}, log.calls)
}

package application

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/output"
)

// memStore is an in-memory implementation of the output ports. WithinTx holds
// the store mutex for the whole closure and restores a snapshot on error.
type memStore struct {
	mu      sync.Mutex
	nextID  uint
	raids   map[uint]entities.Raid
	signups map[uint]entities.Signup
	chars   map[uint]entities.Character
	presets map[uint]entities.Preset

	lockCalls []string
	failLock  error
}

func newMemStore() *memStore {
	return &memStore{
		raids:   map[uint]entities.Raid{},
		signups: map[uint]entities.Signup{},
		chars:   map[uint]entities.Character{},
		presets: map[uint]entities.Preset{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

var _ output.Transactor = (*memStore)(nil)

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx output.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raids, signups, chars, presets, next := maps.Clone(s.raids), maps.Clone(s.signups), maps.Clone(s.chars), maps.Clone(s.presets), s.nextID
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.raids, s.signups, s.chars, s.presets, s.nextID = raids, signups, chars, presets, next
		return err
	}
	return nil
}

func (s *memStore) RaidRepo() output.RaidRepository           { return memRaids{s: s} }
func (s *memStore) SignupRepo() output.SignupRepository       { return memSignups{s: s} }
func (s *memStore) CharacterRepo() output.CharacterRepository { return memChars{s: s} }
func (s *memStore) PresetRepo() output.PresetRepository       { return memPresets{s: s} }

// guard locks the store unless the caller already runs inside WithinTx.
func (s *memStore) guard(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memTx struct{ s *memStore }

func (t *memTx) Raids() output.RaidRepository           { return memRaids{s: t.s, inTx: true} }
func (t *memTx) Signups() output.SignupRepository       { return memSignups{s: t.s, inTx: true} }
func (t *memTx) Characters() output.CharacterRepository { return memChars{s: t.s, inTx: true} }
func (t *memTx) Presets() output.PresetRepository       { return memPresets{s: t.s, inTx: true} }

func (t *memTx) LockUser(_ context.Context, userID string) error {
	t.s.lockCalls = append(t.s.lockCalls, "user:"+userID)
	return t.s.failLock
}

func (t *memTx) LockCharacter(_ context.Context, characterID uint) error {
	t.s.lockCalls = append(t.s.lockCalls, "character")
	return t.s.failLock
}

// ---- raids ----

type memRaids struct {
	s    *memStore
	inTx bool
}

func (r memRaids) Create(_ context.Context, raid *entities.Raid) error {
	defer r.s.guard(r.inTx)()
	raid.ID = r.s.id()
	raid.CreatedAt = time.Now()
	raid.UpdatedAt = raid.CreatedAt
	r.s.raids[raid.ID] = *raid
	return nil
}

func (r memRaids) FindByID(_ context.Context, id uint) (*entities.Raid, error) {
	defer r.s.guard(r.inTx)()
	raid, ok := r.s.raids[id]
	if !ok {
		return nil, domain.ErrRaidNotFound
	}
	return &raid, nil
}

func (r memRaids) FindByMessageID(_ context.Context, messageID string) (*entities.Raid, error) {
	defer r.s.guard(r.inTx)()
	for _, raid := range r.s.raids {
		if raid.MessageID == messageID {
			return &raid, nil
		}
	}
	return nil, domain.ErrRaidNotFound
}

func (r memRaids) FindStartingBetween(_ context.Context, from, to time.Time) ([]entities.Raid, error) {
	defer r.s.guard(r.inTx)()
	var out []entities.Raid
	for _, raid := range r.s.raids {
		if !raid.StartsAt.Before(from) && raid.StartsAt.Before(to) {
			out = append(out, raid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (r memRaids) SetMessage(_ context.Context, id uint, channelID, messageID string) error {
	defer r.s.guard(r.inTx)()
	raid, ok := r.s.raids[id]
	if !ok {
		return domain.ErrRaidNotFound
	}
	raid.ChannelID, raid.MessageID = channelID, messageID
	r.s.raids[id] = raid
	return nil
}

func (r memRaids) Update(_ context.Context, raid *entities.Raid) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.raids[raid.ID]; !ok {
		return domain.ErrRaidNotFound
	}
	r.s.raids[raid.ID] = *raid
	return nil
}

func (r memRaids) Delete(_ context.Context, id uint) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.raids[id]; !ok {
		return domain.ErrRaidNotFound
	}
	delete(r.s.raids, id)
	for sid, su := range r.s.signups {
		if su.RaidID == id {
			delete(r.s.signups, sid)
		}
	}
	return nil
}

// ---- signups ----

type memSignups struct {
	s    *memStore
	inTx bool
}

func (r memSignups) Create(_ context.Context, signup *entities.Signup) error {
	defer r.s.guard(r.inTx)()
	if charID, ok := signup.CharacterID(); ok {
		for _, other := range r.s.signups {
			if id, bound := other.CharacterID(); bound && id == charID && other.RaidID == signup.RaidID {
				return domain.ErrSignupExists
			}
		}
	}
	signup.ID = r.s.id()
	signup.UpdatedAt = signup.CreatedAt
	r.s.signups[signup.ID] = *signup
	return nil
}

func (r memSignups) FindByID(_ context.Context, id uint) (*entities.Signup, error) {
	defer r.s.guard(r.inTx)()
	su, ok := r.s.signups[id]
	if !ok {
		return nil, domain.ErrSignupNotFound
	}
	return &su, nil
}

func (r memSignups) sorted(keep func(entities.Signup) bool) []entities.Signup {
	var out []entities.Signup
	for _, su := range r.s.signups {
		if keep(su) {
			out = append(out, su)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memSignups) FindByRaidID(_ context.Context, raidID uint) ([]entities.Signup, error) {
	defer r.s.guard(r.inTx)()
	return r.sorted(func(su entities.Signup) bool { return su.RaidID == raidID }), nil
}

func (r memSignups) FindByRaidAndCharacter(_ context.Context, raidID, characterID uint) (*entities.Signup, error) {
	defer r.s.guard(r.inTx)()
	for _, su := range r.s.signups {
		if id, ok := su.CharacterID(); ok && id == characterID && su.RaidID == raidID {
			return &su, nil
		}
	}
	return nil, domain.ErrSignupNotFound
}

func (r memSignups) FindByRaidAndUser(_ context.Context, raidID uint, userID string) ([]entities.Signup, error) {
	defer r.s.guard(r.inTx)()
	return r.sorted(func(su entities.Signup) bool { return su.RaidID == raidID && su.UserID == userID }), nil
}

func (r memSignups) picked(keep func(entities.Signup, entities.Raid) bool) []entities.PickedSignup {
	var out []entities.PickedSignup
	for _, su := range r.sorted(func(su entities.Signup) bool { return su.IsPicked() }) {
		raid := r.s.raids[su.RaidID]
		if keep(su, raid) {
			out = append(out, entities.PickedSignup{Signup: su, RaidStartsAt: raid.StartsAt, RaidDifficulty: raid.Difficulty})
		}
	}
	return out
}

func (r memSignups) FindPickedByUserBetween(_ context.Context, userID string, from, to time.Time) ([]entities.PickedSignup, error) {
	defer r.s.guard(r.inTx)()
	return r.picked(func(su entities.Signup, raid entities.Raid) bool {
		return su.UserID == userID && !raid.StartsAt.Before(from) && !raid.StartsAt.After(to)
	}), nil
}

func (r memSignups) FindPickedByCharacterBetween(_ context.Context, characterID uint, from, to time.Time) ([]entities.PickedSignup, error) {
	defer r.s.guard(r.inTx)()
	return r.picked(func(su entities.Signup, raid entities.Raid) bool {
		id, ok := su.CharacterID()
		return ok && id == characterID && !raid.StartsAt.Before(from) && raid.StartsAt.Before(to)
	}), nil
}

func (r memSignups) DeleteRegisteredByCharacterBetween(_ context.Context, characterID uint, from, to time.Time, exceptID uint) ([]entities.Signup, error) {
	defer r.s.guard(r.inTx)()
	victims := r.sorted(func(su entities.Signup) bool {
		id, ok := su.CharacterID()
		if !ok || id != characterID || su.ID == exceptID || su.Status != domain.StatusRegistered {
			return false
		}
		starts := r.s.raids[su.RaidID].StartsAt
		return !starts.Before(from) && starts.Before(to)
	})
	for _, su := range victims {
		delete(r.s.signups, su.ID)
	}
	return victims, nil
}

func (r memSignups) UpdateStatus(_ context.Context, id uint, status domain.SignupStatus) error {
	defer r.s.guard(r.inTx)()
	su, ok := r.s.signups[id]
	if !ok {
		return domain.ErrSignupNotFound
	}
	su.Status = status
	r.s.signups[id] = su
	return nil
}

func (r memSignups) Delete(_ context.Context, id uint) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.signups[id]; !ok {
		return domain.ErrSignupNotFound
	}
	delete(r.s.signups, id)
	return nil
}

// ---- characters ----

type memChars struct {
	s    *memStore
	inTx bool
}

func (r memChars) Create(_ context.Context, c *entities.Character) error {
	defer r.s.guard(r.inTx)()
	for _, other := range r.s.chars {
		if other.UserID == c.UserID && strings.EqualFold(other.Name, c.Name) && strings.EqualFold(other.Realm, c.Realm) {
			return domain.ErrCharacterExists
		}
	}
	c.ID = r.s.id()
	r.s.chars[c.ID] = *c
	return nil
}

func (r memChars) FindByID(_ context.Context, id uint) (*entities.Character, error) {
	defer r.s.guard(r.inTx)()
	c, ok := r.s.chars[id]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (r memChars) FindByUserID(_ context.Context, userID string) ([]entities.Character, error) {
	defer r.s.guard(r.inTx)()
	var out []entities.Character
	for _, c := range r.s.chars {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memChars) Delete(_ context.Context, id uint) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.chars[id]; !ok {
		return domain.ErrCharacterNotFound
	}
	delete(r.s.chars, id)
	for sid, su := range r.s.signups {
		if cid, ok := su.CharacterID(); ok && cid == id {
			delete(r.s.signups, sid)
		}
	}
	return nil
}

// ---- presets ----

type memPresets struct {
	s    *memStore
	inTx bool
}

func (r memPresets) Create(_ context.Context, p *entities.Preset) error {
	defer r.s.guard(r.inTx)()
	for _, other := range r.s.presets {
		if strings.EqualFold(other.Name, p.Name) {
			return domain.ErrPresetExists
		}
	}
	p.ID = r.s.id()
	r.s.presets[p.ID] = *p
	return nil
}

func (r memPresets) FindByID(_ context.Context, id uint) (*entities.Preset, error) {
	defer r.s.guard(r.inTx)()
	p, ok := r.s.presets[id]
	if !ok {
		return nil, domain.ErrPresetNotFound
	}
	return &p, nil
}

func (r memPresets) FindByName(_ context.Context, name string) (*entities.Preset, error) {
	defer r.s.guard(r.inTx)()
	for _, p := range r.s.presets {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, domain.ErrPresetNotFound
}

func (r memPresets) List(_ context.Context) ([]entities.Preset, error) {
	defer r.s.guard(r.inTx)()
	out := make([]entities.Preset, 0, len(r.s.presets))
	for _, p := range r.s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---- notifier ----

type recordingNotifier struct {
	mu    sync.Mutex
	calls []uint
	err   error
}

func (n *recordingNotifier) NotifyRaid(_ context.Context, raidID uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, raidID)
	return n.err
}

func (n *recordingNotifier) Calls() []uint {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]uint(nil), n.calls...)
}

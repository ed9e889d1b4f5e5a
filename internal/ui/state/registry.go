package state

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/model"
)

var (
	// ErrDuplicateID is reported by Load when two streams share an id.
	ErrDuplicateID = errors.New("duplicate stream id")
	// ErrMultipleUnmuted is reported by Load when more than one stream is audible.
	ErrMultipleUnmuted = errors.New("more than one unmuted stream")
	// ErrInvalidStream is reported by Load for streams missing an id, channel or known platform.
	ErrInvalidStream = errors.New("invalid stream")
)

// Registry owns the ordered stream list and keeps at most one stream unmuted.
//
// Every transition builds a new slice and swaps it in under the lock, so
// subscribers and Snapshot callers only ever observe complete states.
type Registry struct {
	mu      sync.RWMutex
	streams []model.Stream
	newID   func() string
	subs    map[int]func([]model.Stream)
	nextSub int
}

// Option customises a Registry.
type Option func(*Registry)

// WithIDGenerator replaces the UUID generator used for new streams.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRegistry constructs an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		newID: uuid.NewString,
		subs:  make(map[int]func([]model.Stream)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot returns a copy of the current list.
//
// Callers can safely modify the returned slice without affecting the registry.
func (r *Registry) Snapshot() []model.Stream {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.streams)
}

// Len reports the number of streams.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.streams)
}

// Get looks a stream up by id.
func (r *Registry) Get(id string) (model.Stream, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Find(r.streams, func(s model.Stream) bool { return s.ID == id })
}

// Add parses raw and appends the resulting stream, muted, at the end of the
// list. A parse failure leaves the registry untouched.
func (r *Registry) Add(raw string) (model.Stream, error) {
	ref, err := forms.ParseStreamURL(raw)
	if err != nil {
		return model.Stream{}, err
	}

	r.mu.Lock()
	stream := model.Stream{
		ID:       r.uniqueIDLocked(),
		Platform: ref.Platform,
		Channel:  ref.Channel,
		Muted:    true,
	}
	next := make([]model.Stream, len(r.streams), len(r.streams)+1)
	copy(next, r.streams)
	r.commitLocked(append(next, stream))
	return stream, nil
}

// Seed adds every input in order. Inputs that fail to parse are skipped and
// reported together; the valid ones are still added.
func (r *Registry) Seed(inputs []string) error {
	var result *multierror.Error
	for _, raw := range inputs {
		if _, err := r.Add(raw); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Load replaces the whole list with streams that were created elsewhere,
// such as the boot payload served to the browser. The list is rejected as a
// whole when it breaks an invariant.
func (r *Registry) Load(streams []model.Stream) error {
	var result *multierror.Error
	seen := make(map[string]struct{}, len(streams))
	for i, s := range streams {
		if s.ID == "" || s.Channel == "" || !s.Platform.Valid() {
			result = multierror.Append(result, fmt.Errorf("stream %d: %w", i, ErrInvalidStream))
			continue
		}
		if _, dup := seen[s.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("stream %q: %w", s.ID, ErrDuplicateID))
		}
		seen[s.ID] = struct{}{}
	}
	if model.CountUnmuted(streams) > 1 {
		result = multierror.Append(result, ErrMultipleUnmuted)
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	r.mu.Lock()
	r.commitLocked(slices.Clone(streams))
	return nil
}

// Remove drops the stream with the given id. Removing an unknown id is a
// no-op and reports false.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	if !lo.ContainsBy(r.streams, func(s model.Stream) bool { return s.ID == id }) {
		r.mu.Unlock()
		return false
	}
	r.commitLocked(lo.Reject(r.streams, func(s model.Stream, _ int) bool { return s.ID == id }))
	return true
}

// SetUnmuted makes id the only audible stream. An unknown id mutes everything.
func (r *Registry) SetUnmuted(id string) {
	r.mu.Lock()
	r.commitLocked(lo.Map(r.streams, func(s model.Stream, _ int) model.Stream {
		s.Muted = s.ID != id
		return s
	}))
}

// Toggle flips the target's mute flag and forces every other stream muted.
// Toggling a muted stream therefore unmutes it exclusively, while toggling
// the audible one leaves nothing unmuted.
func (r *Registry) Toggle(id string) {
	r.mu.Lock()
	r.commitLocked(lo.Map(r.streams, func(s model.Stream, _ int) model.Stream {
		if s.ID == id {
			s.Muted = !s.Muted
		} else {
			s.Muted = true
		}
		return s
	}))
}

// Mute silences the target and leaves the other streams as they are.
func (r *Registry) Mute(id string) {
	r.mu.Lock()
	r.commitLocked(lo.Map(r.streams, func(s model.Stream, _ int) model.Stream {
		if s.ID == id {
			s.Muted = true
		}
		return s
	}))
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function removes the subscription and may be called repeatedly.
func (r *Registry) Subscribe(fn func([]model.Stream)) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	key := r.nextSub
	r.nextSub++
	r.subs[key] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, key)
			r.mu.Unlock()
		})
	}
}

// commitLocked swaps next in when it differs from the current list, then
// releases the lock and notifies subscribers. The caller must hold r.mu.
func (r *Registry) commitLocked(next []model.Stream) {
	if slices.Equal(next, r.streams) {
		r.mu.Unlock()
		return
	}
	r.streams = next
	snapshot := slices.Clone(next)
	subs := make([]func([]model.Stream), 0, len(r.subs))
	for i := 0; i < r.nextSub; i++ {
		if fn, ok := r.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(slices.Clone(snapshot))
	}
}

func (r *Registry) uniqueIDLocked() string {
	base := r.newID()
	id := base
	for i := 1; lo.ContainsBy(r.streams, func(s model.Stream) bool { return s.ID == id }); i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	return id
}

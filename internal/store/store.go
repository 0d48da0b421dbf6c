package store

import (
	"sync"
	"sync/atomic"

	"github.com/fieldkit/fieldkit/internal/errors"
	"github.com/fieldkit/fieldkit/internal/logging"
)

// State is the container state: an immutable mapping from feature name to
// that feature's state. Feature states are pointers, so reference equality
// between two snapshots tells a subscriber whether a feature changed.
// Callers must never mutate a State they are handed.
type State map[string]any

// Reducer produces the next state for one feature. It must be pure: no
// mutation of current, no side effects. Returning current unchanged signals
// a no-op, which suppresses notification for that dispatch.
type Reducer func(current any, action Action) any

// Listener is a function invoked with each new container state.
type Listener func(State)

// feature pairs a reducer with its registration order.
type feature struct {
	key     string
	reducer Reducer
}

// Store is the shared state container. It is constructed explicitly and
// injected into every binder; there is no package-level instance.
// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	state    State
	features []feature
	subs     map[string]*subscriber
	nextID   atomic.Uint64
	seq      atomic.Uint64
	closed   bool
	logger   *logging.Logger
}

// New creates an empty Store. Pass nil to discard logs.
func New(logger *logging.Logger) *Store {
	return &Store{
		state:  make(State),
		subs:   make(map[string]*subscriber),
		logger: logging.Or(logger).WithComponent("store"),
	}
}

// RegisterFeature installs a feature's initial state and reducer.
// Registration must happen before the first Dispatch for that feature;
// re-registering a key replaces its reducer but keeps the current state.
func (s *Store) RegisterFeature(key string, initial any, r Reducer) error {
	if r == nil {
		return errors.NewStoreError("register feature", errors.ErrNilReducer).WithFeature(key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.NewStoreError("register feature", errors.ErrStoreClosed).WithFeature(key)
	}

	for i, f := range s.features {
		if f.key == key {
			s.features[i].reducer = r
			return nil
		}
	}

	s.features = append(s.features, feature{key: key, reducer: r})

	next := make(State, len(s.state)+1)
	for k, v := range s.state {
		next[k] = v
	}
	next[key] = initial
	s.state = next
	return nil
}

// State returns the current container state snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Sequence returns the number of dispatches that changed state.
// No-op dispatches do not advance the sequence.
func (s *Store) Sequence() uint64 {
	return s.seq.Load()
}

// Dispatch reduces an action into the container. It is synchronous: the
// action is fully applied before Dispatch returns. If no feature state
// changed (every reducer returned its input), the previous state is kept as
// is and subscribers are not notified.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		s.logger.Warn("dispatch after close dropped", "action", action.Type)
		return s.state
	}

	changed := false
	next := s.state
	for _, f := range s.features {
		current := s.state[f.key]
		reduced := f.reducer(current, action)
		if reduced == current {
			continue
		}
		if !changed {
			// First change: copy the map once, reusing untouched siblings.
			next = make(State, len(s.state))
			for k, v := range s.state {
				next[k] = v
			}
			changed = true
		}
		next[f.key] = reduced
	}

	if !changed {
		s.mu.Unlock()
		s.logger.Debug("no-op dispatch", "action", action.Type)
		return s.state
	}

	s.state = next
	seq := s.seq.Add(1)

	// Snapshot subscribers under the lock, deliver outside it.
	targets := make([]*subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		targets = append(targets, sub)
	}
	s.mu.Unlock()

	s.logger.Debug("dispatched", "action", action.Type, "seq", seq)
	for _, sub := range targets {
		sub.enqueue(next)
	}
	return next
}

// Subscribe registers a listener for state changes. The listener is invoked
// from a dedicated delivery goroutine: it sees every post-subscription state
// in dispatch order, and slow listeners never block Dispatch or one another.
// Returns a subscription ID for Unsubscribe.
func (s *Store) Subscribe(fn Listener) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateID()
	if s.closed || fn == nil {
		return id
	}

	sub := newSubscriber(id, fn)
	s.subs[id] = sub
	go sub.run()
	return id
}

// Unsubscribe removes a subscription by ID. Queued states that have not yet
// been delivered are dropped. Returns true if the subscription existed.
func (s *Store) Unsubscribe(id string) bool {
	s.mu.Lock()
	sub, ok := s.subs[id]
	delete(s.subs, id)
	s.mu.Unlock()

	if ok {
		sub.stop()
	}
	return ok
}

// SubscriptionCount returns the number of active subscriptions.
func (s *Store) SubscriptionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Close stops all delivery goroutines and rejects further dispatches.
// Dispatching against a closed store is a logged no-op, not an error; a
// late fetch completion may race with shutdown by design.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = make(map[string]*subscriber)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

// generateID creates a unique subscription ID.
func (s *Store) generateID() string {
	id := s.nextID.Add(1)
	return string(rune('a'+id%26)) + string(rune('0'+id/26%10)) + string(rune('a'+id/260%26))
}

package engine

import "sync"

// Listener is notified synchronously after every state change, with the
// state before and after. Listeners must not dispatch from the callback.
type Listener func(old, new *State)

// Store is the single-writer state container for one game session. All
// mutations flow through Dispatch, which serializes actions in submission
// order through the reducer; everything else gets read-only snapshots.
type Store struct {
	mu       sync.Mutex
	reducer  *Reducer
	state    *State
	nextSub  int
	subs     map[int]Listener
	revision uint64
}

// NewStore creates a store seeded with the reducer's initial state.
func NewStore(r *Reducer) *Store {
	return &Store{
		reducer: r,
		state:   r.InitialState(),
		subs:    make(map[int]Listener),
	}
}

// State returns the current state snapshot. The returned value is never
// mutated after being handed out.
func (s *Store) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Revision returns a counter incremented on every state change. A cheap way
// for pollers to detect that nothing happened.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Dispatch applies an action and returns the resulting state. Actions are
// applied strictly in dispatch order. Listeners run synchronously before
// Dispatch returns, so a caller observes all side effects of its own action.
func (s *Store) Dispatch(action Action) *State {
	s.mu.Lock()
	old := s.state
	next := s.reducer.Reduce(old, action)
	if next == old {
		s.mu.Unlock()
		return old
	}
	s.state = next
	s.revision++
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(old, next)
	}
	return next
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

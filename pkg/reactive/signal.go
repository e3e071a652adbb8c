package reactive

import "sync"

// Signal is an observable value container.
//
// Get returns the current value; Set stores a new value and notifies
// subscribers. Subscribers are notified after the store, outside the lock
// (copy-before-notify), so a subscriber may read the signal again without
// deadlocking.
type Signal[T any] struct {
	id uint64

	mu    sync.RWMutex
	value T

	subMu sync.RWMutex
	subs  []func(T)
}

// NewSignal creates a Signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// ID returns the unique identifier for this Signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores a new value and notifies subscribers.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	s.notify(v)
}

// Update applies fn to the current value and stores the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	s.mu.Unlock()

	s.notify(v)
}

// Subscribe registers fn to be called with every subsequently set value.
// The returned function removes the subscription; it is safe to call it
// more than once.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if idx < len(s.subs) && s.subs[idx] != nil {
			s.subs[idx] = nil
		}
	}
}

// notify calls subscribers with v, copying the subscriber list first so no
// lock is held during callbacks.
func (s *Signal[T]) notify(v T) {
	s.subMu.RLock()
	subs := make([]func(T), len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, fn := range subs {
		if fn != nil {
			fn(v)
		}
	}
}

package rxgo

import "sync"

// Subscription is the cancellation and teardown handle for one producer
// invocation. It is created by Subscribe and owned by the caller; the
// zero value is ready to use.
//
// Once closed it never reopens. Registered teardowns run exactly once,
// in registration order.
type Subscription struct {
	mu        sync.Mutex
	closed    bool
	teardowns []func()
}

// Closed reports whether the subscription has been cancelled or has
// terminated. Producers check this between emissions to honor
// cooperative cancellation.
func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Add registers a teardown to run on Unsubscribe. If the subscription
// is already closed the teardown runs immediately, it is never dropped.
func (s *Subscription) Add(teardown func()) {
	if teardown == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		teardown()
		return
	}
	s.teardowns = append(s.teardowns, teardown)
	s.mu.Unlock()
}

// Unsubscribe closes the subscription and runs all registered teardowns
// in registration order. Calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	teardowns := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()

	// Run outside the lock so a teardown may call Add or Unsubscribe
	// without deadlocking.
	for _, teardown := range teardowns {
		teardown()
	}
}

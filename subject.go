package rxgo

import "sync"

// Subject is a hot, multicast producer built on the ordinary source
// contract: consumers attach through Subscribe, Publish fans a value
// out to every live subscription, Fail or Finish terminates them all.
// Values published before a consumer subscribes are not replayed; a
// consumer subscribing after termination receives the terminal signal
// immediately.
type Subject[T any] struct {
	src *Source[T]

	mu     sync.Mutex
	sinks  map[uint64]Sink[T]
	nextID uint64
	done   bool
	err    error
}

func NewSubject[T any](opts ...Option) *Subject[T] {
	s := &Subject[T]{
		sinks: make(map[uint64]Sink[T]),
	}
	s.src = New(s.attach, opts...)
	return s
}

// attach is the Subject's producer: it registers the subscriber's sink
// and returns, leaving the subscription open until Publish, Fail or
// Finish drive it.
func (s *Subject[T]) attach(sink Sink[T], sub *Subscription) {
	s.mu.Lock()
	if s.done {
		err := s.err
		s.mu.Unlock()
		if err != nil {
			sink.Error(err)
			return
		}
		sink.Complete()
		return
	}
	id := s.nextID
	s.nextID++
	s.sinks[id] = sink
	s.mu.Unlock()

	sub.Add(func() {
		s.mu.Lock()
		delete(s.sinks, id)
		s.mu.Unlock()
	})
}

func (s *Subject[T]) Subscribe(sink Sink[T]) *Subscription {
	return s.src.Subscribe(sink)
}

func (s *Subject[T]) SubscribeFunc(next func(T), fail func(error), complete func()) *Subscription {
	return s.src.SubscribeFunc(next, fail, complete)
}

// Publish delivers v to every live subscription. After termination it
// is a no-op.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	sinks := make([]Sink[T], 0, len(s.sinks))
	for _, sink := range s.sinks {
		sinks = append(sinks, sink)
	}
	s.mu.Unlock()

	// Deliver outside the lock: a sink may unsubscribe from within
	// Next, which takes the lock again through the teardown.
	for _, sink := range sinks {
		sink.Next(v)
	}
}

// Fail terminates every live subscription with err.
func (s *Subject[T]) Fail(err error) {
	for _, sink := range s.terminate(err) {
		sink.Error(err)
	}
}

// Finish completes every live subscription.
func (s *Subject[T]) Finish() {
	for _, sink := range s.terminate(nil) {
		sink.Complete()
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sinks)
}

// terminate latches the subject closed exactly once and hands back the
// sinks that still need their terminal signal.
func (s *Subject[T]) terminate(err error) []Sink[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	s.err = err
	sinks := make([]Sink[T], 0, len(s.sinks))
	for _, sink := range s.sinks {
		sinks = append(sinks, sink)
	}
	s.sinks = make(map[uint64]Sink[T])
	return sinks
}

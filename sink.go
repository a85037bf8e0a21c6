package rxgo

import "sync"

// Sink is the callback surface a producer delivers signals through.
// Signals arrive synchronously on the producer's stack unless a
// Scheduler interposes.
type Sink[T any] interface {
	Next(T)
	Error(error)
	Complete()
}

// SubscriptionAware is implemented by sinks that want the subscription
// handle before the producer starts, e.g. to cancel from within Next.
type SubscriptionAware interface {
	OnSubscribe(*Subscription)
}

// SinkFuncs adapts optional callbacks into a Sink. Nil callbacks are
// skipped.
type SinkFuncs[T any] struct {
	OnNext       func(T)
	OnError      func(error)
	OnComplete   func()
	OnSubscribed func(*Subscription)
}

func (s SinkFuncs[T]) Next(v T) {
	if s.OnNext != nil {
		s.OnNext(v)
	}
}

func (s SinkFuncs[T]) Error(err error) {
	if s.OnError != nil {
		s.OnError(err)
	}
}

func (s SinkFuncs[T]) Complete() {
	if s.OnComplete != nil {
		s.OnComplete()
	}
}

func (s SinkFuncs[T]) OnSubscribe(sub *Subscription) {
	if s.OnSubscribed != nil {
		s.OnSubscribed(sub)
	}
}

// guardedSink is the defensive wrapper Subscribe places between a
// producer and the consumer sink. It latches the first terminal signal,
// drops anything a misbehaving producer emits afterwards and reports
// the violation. Signals arriving after the subscription closed are
// dropped silently: cancellation already told the consumer everything
// it needs to know.
type guardedSink[T any] struct {
	down     Sink[T]
	sub      *Subscription
	source   string
	violated func(error)

	mu   sync.Mutex
	done bool
}

func (g *guardedSink[T]) Next(v T) {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		g.violated(ViolationErr{Kind: EmitAfterTermination, Source: g.source})
		return
	}
	g.mu.Unlock()
	if g.sub.Closed() {
		return
	}
	g.down.Next(v)
}

func (g *guardedSink[T]) Error(err error) {
	if !g.latch() {
		return
	}
	g.down.Error(err)
	g.sub.Unsubscribe()
}

func (g *guardedSink[T]) Complete() {
	if !g.latch() {
		return
	}
	g.down.Complete()
	g.sub.Unsubscribe()
}

// latch claims the single terminal slot. It returns false when the slot
// is spent (protocol violation) or the subscriber already cancelled.
func (g *guardedSink[T]) latch() bool {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		g.violated(ViolationErr{Kind: DoubleTermination, Source: g.source})
		return false
	}
	if g.sub.Closed() {
		g.mu.Unlock()
		return false
	}
	g.done = true
	g.mu.Unlock()
	return true
}

// ===== sinks =====

// ForEach subscribes f to every element of src and returns the
// subscription.
func ForEach[T any](src *Source[T], f func(T)) *Subscription {
	return src.SubscribeFunc(f, nil, nil)
}

// Collect drains src into a slice, blocking until the source
// terminates. It returns the collected elements, or the error the
// source failed with.
func Collect[T any](src *Source[T]) ([]T, error) {
	var m sync.Mutex
	slice := make([]T, 0)
	var cause error
	done := make(chan struct{})

	src.Subscribe(SinkFuncs[T]{
		OnNext: func(v T) {
			m.Lock()
			slice = append(slice, v)
			m.Unlock()
		},
		OnError: func(err error) {
			m.Lock()
			cause = err
			m.Unlock()
			close(done)
		},
		OnComplete: func() {
			close(done)
		},
	})

	<-done
	m.Lock()
	defer m.Unlock()
	if cause != nil {
		return nil, cause
	}
	return slice, nil
}

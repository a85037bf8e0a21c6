// Package rxtest provides test doubles for the rxgo push protocol.
package rxtest

import (
	"sync"

	"github.com/ajitzero/rxgo"
)

// Recorder is a Sink that records every signal it receives, in order.
// It is safe under concurrent delivery.
type Recorder[T any] struct {
	mu          sync.Mutex
	signals     []rxgo.Signal[T]
	nexts       int
	sub         *rxgo.Subscription
	cancelAfter int
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// CancelAfter makes the recorder unsubscribe itself as soon as it has
// received n NEXT signals.
func (r *Recorder[T]) CancelAfter(n int) *Recorder[T] {
	r.mu.Lock()
	r.cancelAfter = n
	r.mu.Unlock()
	return r
}

// OnSubscribe captures the subscription handle before the producer
// starts.
func (r *Recorder[T]) OnSubscribe(sub *rxgo.Subscription) {
	r.mu.Lock()
	r.sub = sub
	r.mu.Unlock()
}

func (r *Recorder[T]) Next(v T) {
	r.mu.Lock()
	r.signals = append(r.signals, rxgo.Next(v))
	r.nexts++
	cancel := r.cancelAfter > 0 && r.nexts >= r.cancelAfter
	sub := r.sub
	r.mu.Unlock()

	if cancel && sub != nil {
		sub.Unsubscribe()
	}
}

func (r *Recorder[T]) Error(err error) {
	r.mu.Lock()
	r.signals = append(r.signals, rxgo.Fail[T](err))
	r.mu.Unlock()
}

func (r *Recorder[T]) Complete() {
	r.mu.Lock()
	r.signals = append(r.signals, rxgo.Completed[T]())
	r.mu.Unlock()
}

// Signals returns a snapshot copy of the recorded signals.
func (r *Recorder[T]) Signals() []rxgo.Signal[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]rxgo.Signal[T], len(r.signals))
	copy(cp, r.signals)
	return cp
}

// Values returns the NEXT payloads in delivery order.
func (r *Recorder[T]) Values() []T {
	signals := r.Signals()
	values := make([]T, 0, len(signals))
	for _, s := range signals {
		if s.Kind == rxgo.KindNext {
			values = append(values, s.Value)
		}
	}
	return values
}

// Err returns the recorded ERROR payload, or nil.
func (r *Recorder[T]) Err() error {
	for _, s := range r.Signals() {
		if s.Kind == rxgo.KindError {
			return s.Err
		}
	}
	return nil
}

// Completed reports whether a COMPLETE signal was recorded.
func (r *Recorder[T]) Completed() bool {
	for _, s := range r.Signals() {
		if s.Kind == rxgo.KindComplete {
			return true
		}
	}
	return false
}

// Terminated reports whether any terminal signal was recorded.
func (r *Recorder[T]) Terminated() bool {
	for _, s := range r.Signals() {
		if s.Terminal() {
			return true
		}
	}
	return false
}

// Reset clears the recorder.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.signals = nil
	r.nexts = 0
	r.mu.Unlock()
}

package rxgo

// Producer drives the signal sequence for one subscriber: zero or more
// Next calls followed by exactly one Error or Complete. A producer must
// check sub.Closed() before each emission and stop silently once it
// returns true; cancellation is cooperative, a producer that never
// checks cannot be cancelled from outside.
//
// Producers are re-invoked independently for every subscribe call and
// must not share mutable iteration state across invocations.
type Producer[T any] func(sink Sink[T], sub *Subscription)

// Source is an immutable, reusable wrapper around one Producer. It may
// be subscribed any number of times; every subscription is independent.
type Source[T any] struct {
	producer Producer[T]
	opts     options
}

type options struct {
	name     string
	sched    Scheduler
	violated func(error)
}

type Option func(*options)

// WithName attributes protocol-violation reports to a source name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithScheduler defers the producer invocation through sched instead of
// running it inline on the subscriber's stack.
func WithScheduler(sched Scheduler) Option {
	return func(o *options) {
		if sched != nil {
			o.sched = sched
		}
	}
}

// WithViolationHandler replaces the handler invoked when a producer
// breaks the terminal-once rule.
func WithViolationHandler(handler func(error)) Option {
	return func(o *options) {
		if handler != nil {
			o.violated = handler
		}
	}
}

// Strict upgrades protocol violations from logged warnings to panics.
func Strict() Option {
	return WithViolationHandler(func(err error) {
		panic(err)
	})
}

func defaultViolationHandler(err error) {
	if config().GetBoolDefault("rxgo.strict", false) {
		panic(err)
	}
	log.WithField("component", "rxgo").Warnf("%v", err)
}

// New wraps a producer into a Source.
func New[T any](producer Producer[T], opts ...Option) *Source[T] {
	o := options{
		sched:    SyncScheduler{},
		violated: defaultViolationHandler,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Source[T]{
		producer: producer,
		opts:     o,
	}
}

// Subscribe runs the producer for one fresh subscription and returns
// the subscription handle. The consumer sink is wrapped so that at most
// one terminal signal gets through and nothing is delivered after the
// subscription closed. A panicking producer is recovered into a single
// ERROR signal.
//
// With the default SyncScheduler the producer has already terminated
// (or observed cancellation) by the time Subscribe returns. Sinks that
// need the handle earlier implement SubscriptionAware.
func (s *Source[T]) Subscribe(sink Sink[T]) *Subscription {
	sub := &Subscription{}
	guarded := &guardedSink[T]{
		down:     sink,
		sub:      sub,
		source:   s.opts.name,
		violated: s.opts.violated,
	}

	if aware, ok := sink.(SubscriptionAware); ok {
		aware.OnSubscribe(sub)
	}

	s.opts.sched.Schedule(func() {
		defer func() {
			if r := recover(); r != nil {
				// A violation handler that panics (strict mode) must
				// not be converted into an ERROR signal.
				if v, ok := r.(ViolationErr); ok {
					panic(v)
				}
				guarded.Error(PanicError(r))
			}
		}()
		s.producer(guarded, sub)
	})

	return sub
}

// SubscribeFunc subscribes a callback triple; nil callbacks are
// skipped.
func (s *Source[T]) SubscribeFunc(next func(T), fail func(error), complete func()) *Subscription {
	return s.Subscribe(SinkFuncs[T]{
		OnNext:     next,
		OnError:    fail,
		OnComplete: complete,
	})
}

package rxgo

// Scheduler defers zero-argument callbacks. The producer contract is
// agnostic to scheduling; a Source only hands its producer invocation
// to the configured Scheduler.
type Scheduler interface {
	Schedule(func())
}

// SchedulerFunc adapts a plain function into a Scheduler.
type SchedulerFunc func(func())

func (s SchedulerFunc) Schedule(f func()) {
	s(f)
}

// SyncScheduler runs callbacks inline on the caller's stack. It is the
// default: all signal delivery happens synchronously in the subscribe
// call.
type SyncScheduler struct{}

func (SyncScheduler) Schedule(f func()) {
	f()
}

// GoScheduler defers each callback to its own goroutine.
type GoScheduler struct{}

func (GoScheduler) Schedule(f func()) {
	go f()
}

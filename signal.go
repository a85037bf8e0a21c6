package rxgo

import "fmt"

// Kind tags one unit of the push protocol.
type Kind int

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "NEXT"
	case KindError:
		return "ERROR"
	case KindComplete:
		return "COMPLETE"
	default:
		return fmt.Sprintf("KIND(%d)", int(k))
	}
}

// Signal is one unit of the push protocol. Value is set only for
// KindNext, Err only for KindError. At most one terminal signal
// (KindError or KindComplete) is valid per subscription lifetime.
type Signal[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func Next[T any](v T) Signal[T] {
	return Signal[T]{Kind: KindNext, Value: v}
}

func Fail[T any](err error) Signal[T] {
	return Signal[T]{Kind: KindError, Err: err}
}

func Completed[T any]() Signal[T] {
	return Signal[T]{Kind: KindComplete}
}

// Terminal reports whether the signal ends its subscription.
func (s Signal[T]) Terminal() bool {
	return s.Kind == KindError || s.Kind == KindComplete
}

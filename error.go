package rxgo

import "fmt"

// ViolationKind classifies a breach of the sink signaling protocol.
type ViolationKind int

const (
	// DoubleTermination is reported when a producer delivers a second
	// terminal signal (ERROR or COMPLETE) on the same subscription.
	DoubleTermination ViolationKind = iota
	// EmitAfterTermination is reported when a producer delivers NEXT
	// after a terminal signal on the same subscription.
	EmitAfterTermination
)

func (k ViolationKind) String() string {
	switch k {
	case DoubleTermination:
		return "double-termination"
	case EmitAfterTermination:
		return "emit-after-termination"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// ViolationErr reports a protocol violation by a misbehaving producer.
type ViolationErr struct {
	Kind   ViolationKind
	Source string
}

func (e ViolationErr) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("rxgo: %v", e.Kind)
	}
	return fmt.Sprintf("rxgo: %v in source %q", e.Kind, e.Source)
}

type PanicErr struct {
	err error
}

// PanicError wraps a value recovered from a panicking producer.
func PanicError(v interface{}) error {
	if err, ok := v.(error); ok {
		return PanicErr{err}
	}
	return PanicErr{fmt.Errorf("producer-panic: %v", v)}
}

func (e PanicErr) Error() string {
	return e.err.Error()
}

func (e PanicErr) Previous() error {
	return e.err
}

func (e PanicErr) Unwrap() error {
	return e.err
}

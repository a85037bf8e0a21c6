package rxgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalConstructors(t *testing.T) {
	next := Next(42)
	assert.Equal(t, KindNext, next.Kind)
	assert.Equal(t, 42, next.Value)
	assert.False(t, next.Terminal())

	cause := errors.New("boom")
	fail := Fail[int](cause)
	assert.Equal(t, KindError, fail.Kind)
	assert.Equal(t, cause, fail.Err)
	assert.True(t, fail.Terminal())

	done := Completed[int]()
	assert.Equal(t, KindComplete, done.Kind)
	assert.True(t, done.Terminal())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NEXT", KindNext.String())
	assert.Equal(t, "ERROR", KindError.String())
	assert.Equal(t, "COMPLETE", KindComplete.String())
}

func TestViolationErr(t *testing.T) {
	err := ViolationErr{Kind: DoubleTermination, Source: "pairs"}
	assert.Contains(t, err.Error(), "double-termination")
	assert.Contains(t, err.Error(), "pairs")

	anonymous := ViolationErr{Kind: EmitAfterTermination}
	assert.Contains(t, anonymous.Error(), "emit-after-termination")
}

func TestPanicError(t *testing.T) {
	cause := errors.New("boom")
	err := PanicError(cause)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, cause, err.(PanicErr).Previous())

	wrapped := PanicError("not an error")
	assert.Contains(t, wrapped.Error(), "not an error")
}

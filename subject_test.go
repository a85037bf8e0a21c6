package rxgo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajitzero/rxgo"
	"github.com/ajitzero/rxgo/rxtest"
)

func TestSubjectMulticast(t *testing.T) {
	subject := rxgo.NewSubject[string]()

	first := rxtest.NewRecorder[string]()
	second := rxtest.NewRecorder[string]()
	subject.Subscribe(first)
	subject.Subscribe(second)
	assert.Equal(t, 2, subject.Subscribers())

	subject.Publish("a")
	subject.Publish("b")

	assert.Equal(t, []string{"a", "b"}, first.Values())
	assert.Equal(t, []string{"a", "b"}, second.Values())
}

func TestSubjectUnsubscribeStopsDelivery(t *testing.T) {
	subject := rxgo.NewSubject[int]()

	gone := rxtest.NewRecorder[int]()
	kept := rxtest.NewRecorder[int]()
	sub := subject.Subscribe(gone)
	subject.Subscribe(kept)

	subject.Publish(1)
	sub.Unsubscribe()
	subject.Publish(2)

	assert.Equal(t, []int{1}, gone.Values())
	assert.Equal(t, []int{1, 2}, kept.Values())
	assert.Equal(t, 1, subject.Subscribers())
}

func TestSubjectFinish(t *testing.T) {
	subject := rxgo.NewSubject[int]()

	rec := rxtest.NewRecorder[int]()
	sub := subject.Subscribe(rec)

	subject.Publish(1)
	subject.Finish()

	assert.Equal(t, []int{1}, rec.Values())
	assert.True(t, rec.Completed())
	assert.True(t, sub.Closed())
	assert.Equal(t, 0, subject.Subscribers())

	// Terminated subjects ignore further publishes and terminations.
	subject.Publish(2)
	subject.Finish()
	assert.Len(t, rec.Signals(), 2)
}

func TestSubjectFail(t *testing.T) {
	subject := rxgo.NewSubject[int]()
	cause := errors.New("boom")

	rec := rxtest.NewRecorder[int]()
	subject.Subscribe(rec)
	subject.Fail(cause)

	assert.Equal(t, cause, rec.Err())
	assert.False(t, rec.Completed())
}

func TestSubjectLateSubscriberGetsTerminal(t *testing.T) {
	completed := rxgo.NewSubject[int]()
	completed.Finish()

	late := rxtest.NewRecorder[int]()
	sub := completed.Subscribe(late)
	assert.True(t, late.Completed())
	assert.Empty(t, late.Values())
	assert.True(t, sub.Closed())

	failed := rxgo.NewSubject[int]()
	cause := errors.New("boom")
	failed.Fail(cause)

	lateFail := rxtest.NewRecorder[int]()
	failed.Subscribe(lateFail)
	assert.Equal(t, cause, lateFail.Err())
}

func TestSubjectUnsubscribeFromWithinNext(t *testing.T) {
	subject := rxgo.NewSubject[int]()

	rec := rxtest.NewRecorder[int]().CancelAfter(1)
	subject.Subscribe(rec)

	subject.Publish(1)
	subject.Publish(2)

	assert.Equal(t, []int{1}, rec.Values())
	assert.Equal(t, 0, subject.Subscribers())
}

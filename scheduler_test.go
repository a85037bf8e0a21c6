package rxgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/ajitzero/rxgo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSchedulerFunc(t *testing.T) {
	var scheduled int
	sched := rxgo.SchedulerFunc(func(f func()) {
		scheduled++
		f()
	})

	values, err := rxgo.Collect(rxgo.New(func(sink rxgo.Sink[int], sub *rxgo.Subscription) {
		sink.Next(7)
		sink.Complete()
	}, rxgo.WithScheduler(sched)))

	assert.NoError(t, err)
	assert.Equal(t, []int{7}, values)
	assert.Equal(t, 1, scheduled)
}

func TestSyncSchedulerRunsInline(t *testing.T) {
	var done bool
	rxgo.SyncScheduler{}.Schedule(func() { done = true })
	assert.True(t, done)
}

func TestGoSchedulerDefersProducer(t *testing.T) {
	rec := rxgo.NewRecord[int]().Set("foo", 42).Set("bar", 56)
	src := rxgo.Pairs(rec, rxgo.WithScheduler(rxgo.GoScheduler{}))

	// Collect blocks until the deferred producer terminates.
	values, err := rxgo.Collect(src)
	assert.NoError(t, err)
	assert.Equal(t, []rxgo.Entry[int]{
		{Key: "foo", Value: 42},
		{Key: "bar", Value: 56},
	}, values)
}

func TestGoSchedulerPanicRecovered(t *testing.T) {
	src := rxgo.New(func(sink rxgo.Sink[int], sub *rxgo.Subscription) {
		panic("boom")
	}, rxgo.WithScheduler(rxgo.GoScheduler{}))

	_, err := rxgo.Collect(src)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

/*
Package rxgo implements a synchronous, cancellable, single-subscriber
push-stream core: the producer/consumer contract that higher-level
stream combinators are written against.

The protocol has a four-signal vocabulary. Subscribing invokes a
Producer with a Sink and a fresh Subscription; the producer delivers
zero or more NEXT signals followed by exactly one terminal signal,
ERROR or COMPLETE. Delivery is inline on the subscriber's stack unless
a Scheduler interposes.

Cancellation is cooperative. A producer checks Subscription.Closed
before each emission and stops silently once it is true; the consumer
that cancelled receives neither ERROR nor COMPLETE. Teardowns
registered on a Subscription run exactly once, in registration order,
and a teardown added after close runs immediately.

# Sources

A Source wraps one Producer and may be subscribed any number of times,
each subscription independent:

	naturals := rxgo.New(func(sink rxgo.Sink[int], sub *rxgo.Subscription) {
		for i := 0; ; i++ {
			if sub.Closed() {
				return
			}
			sink.Next(i)
		}
	})

Subscribe wraps the consumer sink defensively: the first terminal
signal latches, anything a misbehaving producer emits afterwards is
dropped and reported as a protocol violation. Violations are logged by
default; the Strict option, or the rxgo.strict config key, turns them
into panics. A panicking producer is recovered into a single ERROR.

# Pairs

Pairs, PairsOfMap and PairsOfStruct enumerate a record's own keys into
Entry values. The key list is snapshotted at subscribe time and keys
reachable only through a delegation chain (a Record parent, or fields
promoted from an embedded struct) are never emitted:

	rec := rxgo.NewRecord[int]().Set("foo", 42).Set("bar", 56)
	rxgo.Pairs(rec).SubscribeFunc(
		func(e rxgo.Entry[int]) { fmt.Println(e.Key, e.Value) },
		nil,
		func() { fmt.Println("done") },
	)

# Subjects

Subject multicasts published values to all live subscriptions and is
the reference producer for push-at-will streams built on this core.
*/
package rxgo

package rxgo

import (
	"fmt"
	"reflect"
	"sort"
)

// Entry is one key/value pair emitted by the pairs producers.
type Entry[T any] struct {
	Key   string
	Value T
}

// Record is an insertion-ordered, string-keyed record. A record may
// delegate lookups to a parent record (see Extend); delegated keys are
// visible through Get but are not OWN keys and are never enumerated.
type Record[T any] struct {
	keys   []string
	values map[string]T
	parent *Record[T]
}

func NewRecord[T any]() *Record[T] {
	return &Record[T]{
		values: make(map[string]T),
	}
}

// Extend returns a new empty record delegating lookups to r.
func (r *Record[T]) Extend() *Record[T] {
	child := NewRecord[T]()
	child.parent = r
	return child
}

// Set stores an own key, shadowing any delegated key of the same name.
// Insertion order of first sets is the enumeration order.
func (r *Record[T]) Set(key string, value T) *Record[T] {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get resolves key against the record and then its delegation chain.
func (r *Record[T]) Get(key string) (T, bool) {
	for rec := r; rec != nil; rec = rec.parent {
		if v, ok := rec.values[key]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Own reports whether key is present directly on the record, not via
// the delegation chain.
func (r *Record[T]) Own(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns a snapshot of the record's own keys in insertion order.
func (r *Record[T]) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record[T]) Len() int {
	return len(r.keys)
}

// Pairs emits one Entry per own key of rec, in insertion order,
// followed by COMPLETE. The key list is snapshotted when the producer
// runs; mutating rec afterwards does not change the captured list.
// Cancellation mid-enumeration stops emission silently.
func Pairs[T any](rec *Record[T], opts ...Option) *Source[Entry[T]] {
	return New(func(sink Sink[Entry[T]], sub *Subscription) {
		keys := rec.Keys()
		for _, key := range keys {
			if sub.Closed() {
				return
			}
			// Guard against keys that stopped being own properties
			// since the snapshot.
			if !rec.Own(key) {
				continue
			}
			value, _ := rec.Get(key)
			sink.Next(Entry[T]{Key: key, Value: value})
		}
		if sub.Closed() {
			return
		}
		sink.Complete()
	}, opts...)
}

// PairsOfMap emits one Entry per key of m. Go maps carry no enumeration
// order, so keys are emitted sorted.
func PairsOfMap[T any](m map[string]T, opts ...Option) *Source[Entry[T]] {
	return New(func(sink Sink[Entry[T]], sub *Subscription) {
		keys := make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if sub.Closed() {
				return
			}
			sink.Next(Entry[T]{Key: key, Value: m[key]})
		}
		if sub.Closed() {
			return
		}
		sink.Complete()
	}, opts...)
}

// PairsOfStruct emits one Entry per exported field declared directly on
// the struct v (a pointer to struct is dereferenced). Fields promoted
// from embedded structs are inherited, not own, and are excluded.
// A non-struct input fails the subscription with a single ERROR; a
// panicking field access is recovered by the Source wrapper and
// surfaces the same way.
func PairsOfStruct(v interface{}, opts ...Option) *Source[Entry[interface{}]] {
	return New(func(sink Sink[Entry[interface{}]], sub *Subscription) {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				sink.Error(fmt.Errorf("rxgo: pairs of nil %v", rv.Type()))
				return
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			sink.Error(fmt.Errorf("rxgo: pairs of %T: not a struct", v))
			return
		}

		fields := ownFields(rv.Type())
		for _, field := range fields {
			if sub.Closed() {
				return
			}
			sink.Next(Entry[interface{}]{
				Key:   field.Name,
				Value: rv.FieldByIndex(field.Index).Interface(),
			})
		}
		if sub.Closed() {
			return
		}
		sink.Complete()
	}, opts...)
}

// ownFields snapshots the exported fields declared directly on t, in
// declaration order. Anonymous (embedded) fields act as the delegation
// link and are skipped along with everything they promote.
func ownFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

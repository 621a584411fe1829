package rop

import (
	"fmt"
	"reflect"
)

// Result holds either the value of an operation (tag 0) or the payload
// captured for exactly one kind of its sequence (tags 1..N). Reading it
// under a tag it does not hold panics with a *TagError.
//
// An Unmatched result holds neither and reports tag -1.
//
// When T is a pointer type the Result stores the pointer, so changes made
// through Value are seen by the owner of the pointee.
type Result[T any] struct {
	seq     *Sequence
	value   T
	payload any
	index   int
}

func Value[T any](seq *Sequence, v T) Result[T] {
	return Result[T]{seq: seq, value: v}
}

const unmatched = -1

// Unmatched builds a Result that can not be read: HasValue is false, Value
// and Payload panic and Err returns ErrUnmatched. It stands in for a
// result next to an error no kind matched.
func Unmatched[T any](seq *Sequence) Result[T] {
	return Result[T]{seq: seq, index: unmatched}
}

// Caught builds the Result for kind index of seq.
func Caught[T any](seq *Sequence, index int, payload any) Result[T] {
	if index < 1 || index > seq.Len() {
		fatal(fmt.Errorf("%w: %d not in 1..%d", ErrInvalidIndex, index, seq.Len()))
	}
	return Result[T]{seq: seq, payload: payload, index: index}
}

func (r Result[T]) HasValue() bool { return r.index == 0 }

func (r Result[T]) IsSuccess() bool { return r.index == 0 }

func (r Result[T]) Index() int { return r.index }

func (r Result[T]) Sequence() *Sequence { return r.seq }

func (r Result[T]) Value() T {
	if r.index != 0 {
		fatal(&TagError{Want: 0, Have: r.index})
	}
	return r.value
}

// Payload returns what was captured for kind i.
func (r Result[T]) Payload(i int) any {
	if i < 1 || r.index != i {
		fatal(&TagError{Want: i, Have: r.index})
	}
	return r.payload
}

// Kind returns the matched kind, or nil for a value.
func (r Result[T]) Kind() Kind { return r.seq.Kind(r.index) }

// Err returns nil for a value. A caught error is returned as is, any other
// payload is described by a *KindError.
func (r Result[T]) Err() error {
	switch r.index {
	case 0:
		return nil
	case unmatched:
		return ErrUnmatched
	}
	if err, ok := r.payload.(error); ok {
		return err
	}
	return &KindError{Index: r.index, Kind: r.Kind().Name(), Payload: r.payload}
}

func (r Result[T]) Get() (T, error) {
	if r.index != 0 {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

func (r Result[T]) String() string {
	switch {
	case r.index == 0:
		return fmt.Sprintf("value(%v)", r.value)
	case r.index == unmatched:
		return "unmatched"
	}
	return fmt.Sprintf("kind %d %s(%v)", r.index, r.Kind().Name(), r.payload)
}

// PayloadAt is Payload with the payload converted to E. It panics if the
// result does not hold kind i or the payload is not an E.
func PayloadAt[E any, T any](r Result[T], i int) E {
	p := r.Payload(i)
	e, ok := p.(E)
	if !ok {
		fatal(&TagError{Want: i, Have: r.index, Payload: reflect.TypeFor[E]().String()})
	}
	return e
}

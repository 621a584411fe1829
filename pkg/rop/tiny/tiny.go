package tiny

import (
	"github.com/ib-77/inlinetry/pkg/rop"
	"github.com/ib-77/inlinetry/pkg/rop/solo"
)

type Chain[T any] struct {
	seq *rop.Sequence
	res rop.Result[T]
}

// Start runs op through the sequence and begins a chain with its result.
func Start[T any](seq *rop.Sequence, op func() T) Chain[T] {
	return Chain[T]{seq: seq, res: solo.Call(seq, op)}
}

func FromValue[T any](seq *rop.Sequence, v T) Chain[T] {
	return Chain[T]{seq: seq, res: rop.Value(seq, v)}
}

func FromResult[T any](r rop.Result[T]) Chain[T] {
	return Chain[T]{seq: r.Sequence(), res: r}
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// Then runs the next step through the chain's sequence. Once a kind has
// been caught the remaining steps are skipped.
func (c Chain[T]) Then(step func(t T) T) Chain[T] {
	if !c.res.HasValue() {
		return c
	}
	v := c.res.Value()
	return Chain[T]{seq: c.seq, res: solo.Call(c.seq, func() T { return step(v) })}
}

// ThenTry is Then for steps that return (T, error). An error no kind
// matches is returned and the chain stops where it was.
func (c Chain[T]) ThenTry(step func(t T) (T, error)) (Chain[T], error) {
	if !c.res.HasValue() {
		return c, nil
	}
	v := c.res.Value()
	res, err := solo.CallErr(c.seq, func() (T, error) { return step(v) })
	if err != nil {
		return c, err
	}
	return Chain[T]{seq: c.seq, res: res}, nil
}

// RepeatUntil runs step until it is caught or until returns false.
func (c Chain[T]) RepeatUntil(step func(t T) T, until func(t T) bool) Chain[T] {
	for c.res.HasValue() {
		c = c.Then(step)
		if !c.res.HasValue() || !until(c.res.Value()) {
			return c
		}
	}
	return c
}

// Map transforms the value without interception.
func (c Chain[T]) Map(onValue func(t T) T) Chain[T] {
	if !c.res.HasValue() {
		return c
	}
	return Chain[T]{seq: c.seq, res: rop.Value(c.seq, onValue(c.res.Value()))}
}

// Or returns the first chain holding a value, or c when none does.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.HasValue() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.HasValue() {
			return alt
		}
	}
	return c
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onValue func(T), onCaught func(index int, payload any)) Chain[T] {
	if c.res.HasValue() {
		if onValue != nil {
			onValue(c.res.Value())
		}
		return c
	}
	if onCaught != nil {
		onCaught(c.res.Index(), c.res.Payload(c.res.Index()))
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(onValue func(T) T, onCaught func(index int, payload any) T) T {
	return solo.Finally(c.res, onValue, onCaught)
}

// Then2 moves a chain to a new value type.
func Then2[T, U any](c Chain[T], step func(t T) U) Chain[U] {
	if !c.res.HasValue() {
		return Chain[U]{seq: c.seq, res: rop.Caught[U](c.seq, c.res.Index(), c.res.Payload(c.res.Index()))}
	}
	v := c.res.Value()
	return Chain[U]{seq: c.seq, res: solo.Call(c.seq, func() U { return step(v) })}
}

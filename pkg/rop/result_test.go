package rop

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverTagError(t *testing.T, fn func()) (te *TagError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, ErrWrongTag)
		require.True(t, errors.As(err, &te))
	}()
	fn()
	return nil
}

func TestResult_Value(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[structA](), CatchAll())
	res := Value(seq, 42)

	assert.True(t, res.HasValue())
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Index())
	assert.Equal(t, 42, res.Value())
	assert.Nil(t, res.Kind())
	assert.Same(t, seq, res.Sequence())
	assert.NoError(t, res.Err())
	assert.Equal(t, "value(42)", res.String())

	v, err := res.Get()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	te := recoverTagError(t, func() { res.Payload(1) })
	assert.Equal(t, 1, te.Want)
	assert.Equal(t, 0, te.Have)
}

func TestResult_PointerValueAliases(t *testing.T) {
	t.Parallel()
	origin := 1
	res := Value(nil, &origin)

	*res.Value() = 10
	assert.Equal(t, 10, origin)
}

func TestResult_Caught(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[structA](), Type[structB](), CatchAll())
	res := Caught[int](seq, 2, structB{n: 3})

	assert.False(t, res.HasValue())
	assert.Equal(t, 2, res.Index())
	assert.Equal(t, structB{n: 3}, res.Payload(2))
	assert.Equal(t, 3, PayloadAt[structB](res, 2).n)
	assert.Equal(t, "rop.structB", res.Kind().Name())
	assert.Equal(t, "kind 2 rop.structB({3})", res.String())

	te := recoverTagError(t, func() { res.Value() })
	assert.Equal(t, 0, te.Want)
	assert.Equal(t, 2, te.Have)

	recoverTagError(t, func() { res.Payload(1) })
	recoverTagError(t, func() { res.Payload(0) })

	te = recoverTagError(t, func() { PayloadAt[structA](res, 2) })
	assert.Equal(t, "rop.structA", te.Payload)
}

func TestResult_Err(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[*codeError](), Type[structA](), Generic(), CatchAll())

	cause := &codeError{code: 1}
	err := Caught[string](seq, 1, cause).Err()
	assert.Same(t, cause, err)

	err = Caught[string](seq, 2, structA{}).Err()
	var ke *KindError
	require.ErrorAs(t, err, &ke)
	assert.ErrorIs(t, err, ErrCaught)
	assert.Equal(t, 2, ke.Index)
	assert.Equal(t, "rop.structA", ke.Kind)

	capsule := NewCapsule(fmt.Errorf("wrapped: %w", cause))
	err = Caught[string](seq, 3, capsule).Err()
	assert.EqualError(t, err, "wrapped: code error")

	res := Caught[string](seq, 4, Unit{})
	assert.EqualError(t, res.Err(), "caught failure: kind 4 (...)")
	v, err := res.Get()
	assert.Empty(t, v)
	assert.ErrorIs(t, err, ErrCaught)
}

func TestResult_Unmatched(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[structA](), CatchAll())
	res := Unmatched[int](seq)

	assert.False(t, res.HasValue())
	assert.False(t, res.IsSuccess())
	assert.Equal(t, -1, res.Index())
	assert.Nil(t, res.Kind())
	assert.Equal(t, "unmatched", res.String())
	assert.ErrorIs(t, res.Err(), ErrUnmatched)

	v, err := res.Get()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrUnmatched)

	te := recoverTagError(t, func() { res.Value() })
	assert.Equal(t, -1, te.Have)
	recoverTagError(t, func() { res.Payload(1) })
	recoverTagError(t, func() { res.Payload(-1) })
}

func TestIsMisuse(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[structA]())

	misuse := func(fn func()) (r any) {
		defer func() { r = recover() }()
		fn()
		return nil
	}

	assert.True(t, IsMisuse(misuse(func() { Value(seq, 1).Payload(1) })))
	assert.True(t, IsMisuse(misuse(func() { Caught[int](seq, 3, nil) })))
	assert.False(t, IsMisuse(ErrCaught))
	assert.False(t, IsMisuse(structA{}))
	assert.False(t, IsMisuse(nil))
}

func TestCaught_InvalidIndex(t *testing.T) {
	t.Parallel()
	seq := MustSequence(Type[structA]())

	for _, idx := range []int{-1, 0, 2} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrInvalidIndex)
			}()
			Caught[int](seq, idx, structA{})
		}()
	}
}

func TestCapsule(t *testing.T) {
	t.Parallel()
	err := &codeError{code: 5}
	c := NewCapsule(err)

	assert.Equal(t, "code error", c.Message())
	assert.Equal(t, "code error", c.Error())
	assert.Equal(t, reflect.TypeOf(err), c.Type())
	assert.Equal(t, "*rop.codeError", c.TypeName())
	assert.Empty(t, Capsule{}.TypeName())
}

func TestResult_Interfaces(t *testing.T) {
	t.Parallel()
	var r WithError[int] = Value(MustSequence(Generic()), 1)
	assert.Equal(t, 1, r.Value())

	tagged := []Tagged{Value[string](nil, "x"), Caught[int](MustSequence(CatchAll()), 1, Unit{})}
	assert.Equal(t, 0, tagged[0].Index())
	assert.Equal(t, 1, tagged[1].Index())
}

package solo

import (
	"github.com/ib-77/inlinetry/pkg/rop"
)

// Wrap returns a function that runs op through Call on every invocation.
func Wrap[T any](seq *rop.Sequence, op func() T) func() rop.Result[T] {
	return func() rop.Result[T] { return Call(seq, op) }
}

func WrapVoid(seq *rop.Sequence, op func()) func() rop.Result[rop.Unit] {
	return func() rop.Result[rop.Unit] { return CallVoid(seq, op) }
}

func Wrap1[A, T any](seq *rop.Sequence, op func(A) T) func(A) rop.Result[T] {
	return func(a A) rop.Result[T] {
		return Call(seq, func() T { return op(a) })
	}
}

func Wrap2[A, B, T any](seq *rop.Sequence, op func(A, B) T) func(A, B) rop.Result[T] {
	return func(a A, b B) rop.Result[T] {
		return Call(seq, func() T { return op(a, b) })
	}
}

func Wrap3[A, B, C, T any](seq *rop.Sequence, op func(A, B, C) T) func(A, B, C) rop.Result[T] {
	return func(a A, b B, c C) rop.Result[T] {
		return Call(seq, func() T { return op(a, b, c) })
	}
}

// WrapVariadic covers operations taking any number of arguments of one type.
func WrapVariadic[A, T any](seq *rop.Sequence, op func(...A) T) func(...A) rop.Result[T] {
	return func(args ...A) rop.Result[T] {
		return Call(seq, func() T { return op(args...) })
	}
}

// WrapErr1 is Wrap1 for operations returning (T, error); see CallErr.
func WrapErr1[A, T any](seq *rop.Sequence, op func(A) (T, error)) func(A) (rop.Result[T], error) {
	return func(a A) (rop.Result[T], error) {
		return CallErr(seq, func() (T, error) { return op(a) })
	}
}

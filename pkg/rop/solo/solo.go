package solo

import (
	"github.com/ib-77/inlinetry/pkg/rop"
)

// Call runs op once on the calling goroutine. If op panics, the panic
// value is matched against seq and the first matching kind becomes the
// Result. A value no kind matches is panicked again unchanged, so Call
// only absorbs everything when seq.Total() holds.
//
// Wrong-tag reads and out-of-range Caught calls made inside op are never
// captured, whatever seq holds (see rop.IsMisuse).
//
// Be aware that runtime.Goexit is not a failure and is never intercepted.
// Under GODEBUG=panicnil=1 a panic(nil) can not be told apart from Goexit,
// so Call returns an unreadable rop.Unmatched result for it.
func Call[T any](seq *rop.Sequence, op func() T) (res rop.Result[T]) {
	done := false
	defer func() {
		if done {
			return
		}
		r := recover()
		if r == nil {
			res = rop.Unmatched[T](seq)
			return
		}
		if rop.IsMisuse(r) {
			panic(r)
		}
		idx, payload, ok := seq.Match(r)
		if !ok {
			panic(r)
		}
		res = rop.Caught[T](seq, idx, payload)
	}()

	res = rop.Value(seq, op())
	done = true
	return res
}

// CallVoid is Call for operations without a value.
func CallVoid(seq *rop.Sequence, op func()) rop.Result[rop.Unit] {
	return Call(seq, func() rop.Unit { op(); return rop.Unit{} })
}

// CallErr is Call for operations that report failure by returning an
// error. A returned error goes through seq like a panic would; when no
// kind matches, it is handed back as the second value next to an
// unreadable rop.Unmatched result.
func CallErr[T any](seq *rop.Sequence, op func() (T, error)) (rop.Result[T], error) {
	var err error
	res := Call(seq, func() T {
		var out T
		out, err = op()
		return out
	})
	if err == nil || !res.HasValue() {
		return res, nil
	}
	if idx, payload, ok := seq.Match(err); ok {
		return rop.Caught[T](seq, idx, payload), nil
	}
	return rop.Unmatched[T](seq), err
}

// Finally reduces a result to a single value with one handler for the
// success value and one for whichever kind was caught.
func Finally[T, Out any](res rop.Result[T],
	onValue func(v T) Out,
	onCaught func(index int, payload any) Out) Out {

	if res.HasValue() {
		return onValue(res.Value())
	}
	return onCaught(res.Index(), res.Payload(res.Index()))
}

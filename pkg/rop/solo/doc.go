// Package solo contains the synchronous adapters that run a single
// operation against a rop.Sequence and return a rop.Result.
//
// Highlights:
// - Call/CallVoid: run a panicking operation once and capture what it raised
// - CallErr: the same for operations that return (T, error)
// - Wrap/Wrap1/Wrap2/Wrap3/WrapVariadic/WrapErr1: turn an operation into one
//   that always returns a rop.Result
// - Finally: reduce a rop.Result to a concrete value
//
// The adapters keep no state between calls and never log, retry or buffer,
// so one wrapped operation may be shared by many goroutines as long as the
// operation itself allows it.
package solo

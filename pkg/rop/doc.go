// Package rop turns failures raised out of band into ordinary values.
//
// A caller declares up front, as a Sequence, the ordered kinds of failure
// it wants told apart:
//
//	seq := rop.MustSequence(rop.Type[*NotFound](), rop.Generic(), rop.CatchAll())
//
// and the adapters in package solo run an operation against it, returning a
// Result that holds either the operation's value or the payload of the
// first kind that matched what the operation raised.
//
// Highlights:
// - Type/Sentinel/Generic/CatchAll/NoCatchAll: declare kinds
// - NewSequence/NewStrictSequence/MustSequence: validate a declaration once
// - Result: HasValue, Value, Index, Payload, PayloadAt, Err
// - Capsule: message and dynamic type captured by the generic kind
package rop

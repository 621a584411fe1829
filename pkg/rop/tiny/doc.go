// Package tiny provides a minimal fluent Chain[T] for composing several
// intercepted steps against one rop.Sequence.
//
// - Start/FromValue/FromResult: create a Chain
// - Then/ThenTry/Then2: run the next step through the sequence
// - Map: transform the value without interception
// - RepeatUntil/Or: loop and fall back
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// A chain stops at the first step that raises a declared kind.
package tiny

package rop

// Tagged is implemented by every Result, whatever its value type.
type Tagged interface {
	// Index returns 0 for a value, the index of the matched kind, or -1
	// for an Unmatched result
	Index() int
	// Sequence returns the sequence the result was built against
	Sequence() *Sequence
}

// WithValue extends Tagged with access to the success value
type WithValue[T any] interface {
	Tagged
	// HasValue returns true if the operation completed normally
	HasValue() bool
	// Value returns the success value, it panics under any other tag
	Value() T
}

// WithError extends WithValue with the error view of a caught kind
type WithError[T any] interface {
	WithValue[T]
	// Err returns nil for a value, otherwise the caught failure as an error
	Err() error
}

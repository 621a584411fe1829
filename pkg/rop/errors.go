package rop

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error is a string type for declaring sentinel errors as constants.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidSequence is wrapped by every rejection NewSequence reports.
	ErrInvalidSequence Error = "invalid kind sequence"
	// ErrShadowedKind is reported by NewStrictSequence for unreachable entries.
	ErrShadowedKind Error = "kind is unreachable"
	// ErrWrongTag is carried by the panic raised when a Result is read under
	// a tag it does not hold.
	ErrWrongTag Error = "result read under the wrong tag"
	// ErrInvalidIndex is carried by the panic raised when a Result is built
	// for a kind index the sequence does not declare.
	ErrInvalidIndex Error = "kind index out of range"
	// ErrCaught is matched by every *KindError.
	ErrCaught Error = "caught failure"
	// ErrUnmatched is the error of a Result that holds neither a value nor
	// a kind, see Unmatched.
	ErrUnmatched Error = "result holds no value and no kind"
)

// TagError describes a read of a Result under the wrong tag. It is only
// ever delivered as a panic value.
type TagError struct {
	Want int
	Have int
	// Payload is the Go type expected by PayloadAt, empty otherwise.
	Payload string
}

func (e *TagError) Error() string {
	if e.Payload != "" {
		return fmt.Sprintf("%s: kind %d does not hold a %s", ErrWrongTag, e.Have, e.Payload)
	}
	return fmt.Sprintf("%s: want %d, have %d", ErrWrongTag, e.Want, e.Have)
}

func (e *TagError) Is(target error) bool { return target == ErrWrongTag }

// KindError is the error form of a caught payload that is not an error
// value itself, such as a panicked struct or the catch-all unit marker.
type KindError struct {
	Index   int
	Kind    string
	Payload any
}

func (e *KindError) Error() string {
	if _, ok := e.Payload.(Unit); ok {
		return fmt.Sprintf("%s: kind %d (%s)", ErrCaught, e.Index, e.Kind)
	}
	return fmt.Sprintf("%s: kind %d (%s): %v", ErrCaught, e.Index, e.Kind, e.Payload)
}

func (e *KindError) Is(target error) bool { return target == ErrCaught }

func fatal(err error) { panic(pkgerrors.WithStack(err)) }

// IsMisuse reports whether v is the panic value of a wrong-tag read or of
// an out-of-range Caught. Adapters must never capture it as a kind.
func IsMisuse(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return errors.Is(err, ErrWrongTag) || errors.Is(err, ErrInvalidIndex)
}

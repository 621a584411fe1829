package rop

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind describes one entry of a declared sequence. The set of kinds is
// closed: use Type, Sentinel, Generic, CatchAll or NoCatchAll.
type Kind interface {
	// Name is a short label used in diagnostics and metrics.
	Name() string
	// Match reports whether a raised value belongs to the kind and returns
	// what a Result stores for it.
	Match(v any) (payload any, ok bool)

	// covers reports whether every value matched by next is also matched
	// by the receiver.
	covers(next Kind) bool
	// errorsOnly reports whether the kind can only match error values.
	errorsOnly() bool
}

var errorType = reflect.TypeFor[error]()

type typeKind[E any] struct {
	t reflect.Type
	// chain is set when errors.As accepts a *E target.
	chain bool
}

// Type declares a specific kind. A raised value matches when its dynamic
// type is E, or implements E when E is an interface. Error values also
// match when an error in their wrap chain does; the payload is then that
// error.
func Type[E any]() Kind {
	t := reflect.TypeFor[E]()
	return typeKind[E]{
		t:     t,
		chain: t.Kind() == reflect.Interface || t.Implements(errorType),
	}
}

func (k typeKind[E]) Name() string { return k.t.String() }

func (k typeKind[E]) Match(v any) (any, bool) {
	if e, ok := v.(E); ok {
		return e, true
	}
	if !k.chain {
		return nil, false
	}
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var target E
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func (k typeKind[E]) covers(next Kind) bool {
	self := k.t
	switch n := next.(type) {
	case interface{ goType() reflect.Type }:
		other := n.goType()
		if other == self {
			return true
		}
		return self.Kind() == reflect.Interface && other.Implements(self)
	case sentinelKind, genericKind:
		return self.Kind() == reflect.Interface && errorType.Implements(self)
	default:
		return false
	}
}

func (k typeKind[E]) errorsOnly() bool { return k.t.Implements(errorType) }

func (k typeKind[E]) goType() reflect.Type { return k.t }

type sentinelKind struct {
	target error
}

// Sentinel declares a kind matching raised errors for which
// errors.Is(err, target) holds. The payload is the raised error.
func Sentinel(target error) Kind { return sentinelKind{target: target} }

func (k sentinelKind) Name() string {
	if k.target == nil {
		return "is(<nil>)"
	}
	return fmt.Sprintf("is(%s)", k.target.Error())
}

func (k sentinelKind) Match(v any) (any, bool) {
	err, ok := v.(error)
	if !ok || !errors.Is(err, k.target) {
		return nil, false
	}
	return err, true
}

func (k sentinelKind) covers(next Kind) bool {
	n, ok := next.(sentinelKind)
	if !ok || n.target == nil || k.target == nil {
		return false
	}
	if !reflect.TypeOf(k.target).Comparable() || !reflect.TypeOf(n.target).Comparable() {
		return false
	}
	return k.target == n.target
}

func (sentinelKind) errorsOnly() bool { return true }

type genericKind struct{}

// Generic declares the generic kind: any raised value implementing error.
// The payload is a Capsule.
func Generic() Kind { return genericKind{} }

func (genericKind) Name() string { return "error" }

func (genericKind) Match(v any) (any, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	return NewCapsule(err), true
}

func (genericKind) covers(next Kind) bool { return next.errorsOnly() }

func (genericKind) errorsOnly() bool { return true }

type catchAllKind struct{}

// CatchAll declares the catch-all kind, which matches anything raised.
// It must be the last entry of a sequence. The payload is Unit.
func CatchAll() Kind { return catchAllKind{} }

func (catchAllKind) Name() string { return "..." }

func (catchAllKind) Match(any) (any, bool) { return Unit{}, true }

func (catchAllKind) covers(Kind) bool { return true }

func (catchAllKind) errorsOnly() bool { return false }

type absentKind struct{}

// NoCatchAll marks the end of a sequence that has no catch-all. It is only
// accepted as the last entry after at least one other kind, and is dropped
// by validation.
func NoCatchAll() Kind { return absentKind{} }

func (absentKind) Name() string { return "none" }

func (absentKind) Match(any) (any, bool) { return nil, false }

func (absentKind) covers(Kind) bool { return false }

func (absentKind) errorsOnly() bool { return false }

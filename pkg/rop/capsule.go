package rop

import "reflect"

// Unit is the payload of the catch-all kind and the value of operations
// that return nothing.
type Unit struct{}

// Capsule is what the generic kind captures: the message of the error and
// its exact dynamic type. It does not keep the error itself.
type Capsule struct {
	msg string
	typ reflect.Type
}

func NewCapsule(err error) Capsule {
	return Capsule{msg: err.Error(), typ: reflect.TypeOf(err)}
}

func (c Capsule) Message() string { return c.msg }

// Type is for diagnostics only.
func (c Capsule) Type() reflect.Type { return c.typ }

func (c Capsule) TypeName() string {
	if c.typ == nil {
		return ""
	}
	return c.typ.String()
}

func (c Capsule) Error() string { return c.msg }

package rop

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// Sequence is a validated, immutable list of kinds. Entries are numbered
// from 1; index 0 is reserved for the success value of a Result.
//
// A nil *Sequence is the empty sequence and never matches anything.
type Sequence struct {
	id    uuid.UUID
	kinds []Kind
	total bool
}

// NewSequence validates kinds and returns the sequence they describe. All
// problems found are reported together, each wrapping ErrInvalidSequence.
// An empty list is accepted and yields a sequence that never matches.
func NewSequence(kinds ...Kind) (*Sequence, error) {
	return build(kinds, false)
}

// NewStrictSequence is NewSequence that also rejects entries made
// unreachable by an earlier entry (see Sequence.Shadowed).
func NewStrictSequence(kinds ...Kind) (*Sequence, error) {
	return build(kinds, true)
}

// MustSequence is NewSequence for package-level declarations; it panics on
// an invalid list.
func MustSequence(kinds ...Kind) *Sequence {
	seq, err := NewSequence(kinds...)
	if err != nil {
		panic(err)
	}
	return seq
}

func build(kinds []Kind, strict bool) (*Sequence, error) {
	var merr *multierror.Error

	last := len(kinds) - 1
	catchAlls := 0

	for i, k := range kinds {
		pos := i + 1
		switch kind := k.(type) {
		case nil:
			merr = multierror.Append(merr, fmt.Errorf("%w: kind %d is nil", ErrInvalidSequence, pos))
		case catchAllKind:
			catchAlls++
			if catchAlls > 1 {
				merr = multierror.Append(merr, fmt.Errorf("%w: catch-all repeated at kind %d", ErrInvalidSequence, pos))
			} else if i != last {
				merr = multierror.Append(merr, fmt.Errorf("%w: catch-all at kind %d of %d, must be last", ErrInvalidSequence, pos, len(kinds)))
			}
		case absentKind:
			if len(kinds) == 1 {
				merr = multierror.Append(merr, fmt.Errorf("%w: no-catch-all marker declares nothing", ErrInvalidSequence))
			} else if i != last {
				merr = multierror.Append(merr, fmt.Errorf("%w: no-catch-all marker at kind %d of %d, must be last", ErrInvalidSequence, pos, len(kinds)))
			}
		case sentinelKind:
			if IsNil(kind.target) {
				merr = multierror.Append(merr, fmt.Errorf("%w: sentinel at kind %d has a nil target", ErrInvalidSequence, pos))
			}
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	kinds = slices.Clone(kinds)
	if len(kinds) > 0 {
		if _, ok := kinds[last].(absentKind); ok {
			kinds = kinds[:last]
		}
	}

	seq := &Sequence{id: uuid.New(), kinds: kinds}
	if n := len(kinds); n > 0 {
		_, seq.total = kinds[n-1].(catchAllKind)
	}

	if strict {
		for _, idx := range seq.Shadowed() {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w: kind %d (%s)",
				ErrInvalidSequence, ErrShadowedKind, idx, seq.kinds[idx-1].Name()))
		}
		if err := merr.ErrorOrNil(); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// ID identifies the sequence in logs and metrics.
func (s *Sequence) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.id
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.kinds)
}

// Kind returns entry i, counted from 1, or nil when out of range.
func (s *Sequence) Kind(i int) Kind {
	if i < 1 || i > s.Len() {
		return nil
	}
	return s.kinds[i-1]
}

func (s *Sequence) Kinds() []Kind {
	if s == nil {
		return nil
	}
	return slices.Clone(s.kinds)
}

// Total reports whether the sequence ends in a catch-all, in which case
// nothing raised through it escapes.
func (s *Sequence) Total() bool { return s != nil && s.total }

// Match tests v against the entries in declaration order and stops at the
// first one that accepts it.
func (s *Sequence) Match(v any) (index int, payload any, ok bool) {
	if s == nil {
		return 0, nil, false
	}
	for i, k := range s.kinds {
		if payload, ok = k.Match(v); ok {
			return i + 1, payload, true
		}
	}
	return 0, nil, false
}

// Shadowed returns the indexes of entries that can never match because an
// earlier entry accepts everything they would.
func (s *Sequence) Shadowed() []int {
	var out []int
	for j := 1; j < s.Len(); j++ {
		for i := 0; i < j; i++ {
			if s.kinds[i].covers(s.kinds[j]) {
				out = append(out, j+1)
				break
			}
		}
	}
	return out
}

func (s *Sequence) String() string {
	names := make([]string, 0, s.Len())
	for i := 1; i <= s.Len(); i++ {
		names = append(names, s.Kind(i).Name())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

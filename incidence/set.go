// SPDX-License-Identifier: MIT

package incidence

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is a fixed-length bit set. The zero value is the empty set of length 0.
// Copies share storage; use Clone for an independent set.
type Set struct {
	n    int
	bits *bitset.BitSet
}

// New returns an empty set of length n (n >= 0).
func New(n int) Set {
	if n < 0 {
		panic("incidence: negative set length")
	}

	return Set{n: n, bits: bitset.New(uint(n))}
}

// FromIndexes returns a set of length n with the given elements set.
// Errors: ErrOutOfRange.
func FromIndexes(n int, idx ...int) (Set, error) {
	s := New(n)
	for _, i := range idx {
		if err := s.Add(i); err != nil {
			return Set{}, err
		}
	}

	return s, nil
}

// Len returns the fixed length of the set.
func (s Set) Len() int { return s.n }

// Add inserts element i.
// Errors: ErrOutOfRange.
func (s Set) Add(i int) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("Add(%d) on length %d: %w", i, s.n, ErrOutOfRange)
	}
	s.bits.Set(uint(i))

	return nil
}

// Has reports whether element i is present. Out-of-range indexes are absent.
func (s Set) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}

	return s.bits.Test(uint(i))
}

// Count returns the number of elements.
func (s Set) Count() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s.bits == nil {
		return New(s.n)
	}

	return Set{n: s.n, bits: s.bits.Clone()}
}

// Grow returns a copy of s with length n >= Len, keeping every element.
func (s Set) Grow(n int) Set {
	if n < s.n {
		panic("incidence: Grow cannot shrink a set")
	}
	out := New(n)
	for _, i := range s.Indexes() {
		out.bits.Set(uint(i))
	}

	return out
}

// Indexes returns the elements in increasing order.
func (s Set) Indexes() []int {
	out := make([]int, 0, s.Count())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Equal reports whether s and o have the same length and elements.
func (s Set) Equal(o Set) bool {
	if s.n != o.n {
		return false
	}

	return s.Count() == o.Count() && s.covers(o)
}

// IsSuperSet reports whether every element of o is in s.
// Errors: ErrSizeMismatch.
func (s Set) IsSuperSet(o Set) (bool, error) {
	if s.n != o.n {
		return false, ErrSizeMismatch
	}

	return s.covers(o), nil
}

// covers assumes equal lengths.
func (s Set) covers(o Set) bool {
	if o.bits == nil || o.Count() == 0 {
		return true
	}
	if s.bits == nil {
		return false
	}

	return s.bits.IsSuperSet(o.bits)
}

// Intersection returns s ∩ o as a new set.
// Errors: ErrSizeMismatch.
func (s Set) Intersection(o Set) (Set, error) {
	if s.n != o.n {
		return Set{}, ErrSizeMismatch
	}
	if s.bits == nil || o.bits == nil {
		return New(s.n), nil
	}

	return Set{n: s.n, bits: s.bits.Intersection(o.bits)}, nil
}

// String renders the set as its 0/1 pattern, e.g. "0110".
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < s.n; i++ {
		if s.Has(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

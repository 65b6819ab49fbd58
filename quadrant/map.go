// SPDX-License-Identifier: MIT

package quadrant

import "sort"

// Map is an ordered associative container keyed by Quadrant.
// The zero value is ready to use. Not safe for concurrent writers.
type Map[T any] struct {
	keys   []Quadrant
	values map[Quadrant]T
}

// NewMap returns an empty map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{values: make(map[Quadrant]T)}
}

// Set inserts or replaces the value for q, keeping keys sorted.
func (m *Map[T]) Set(q Quadrant, v T) {
	if m.values == nil {
		m.values = make(map[Quadrant]T)
	}
	if _, ok := m.values[q]; !ok {
		i := sort.Search(len(m.keys), func(i int) bool { return !m.keys[i].Less(q) })
		m.keys = append(m.keys, Quadrant{})
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = q
	}
	m.values[q] = v
}

// Get returns the value for q and whether it exists.
func (m *Map[T]) Get(q Quadrant) (T, bool) {
	v, ok := m.values[q]

	return v, ok
}

// Len returns the number of entries.
func (m *Map[T]) Len() int { return len(m.keys) }

// Keys returns the keys in lexicographic order (a copy).
func (m *Map[T]) Keys() []Quadrant {
	return append([]Quadrant(nil), m.keys...)
}

// Range calls fn for every entry in key order until fn returns false.
func (m *Map[T]) Range(fn func(Quadrant, T) bool) {
	for _, q := range m.keys {
		if !fn(q, m.values[q]) {
			return
		}
	}
}

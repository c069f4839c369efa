// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

package models

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// Set is an unordered collection of unique tags. The zero value is not
// usable; construct with NewSet or let JSON decoding allocate it.
//
// Sets serialize as JSON arrays sorted by encoded element, so encoding is
// deterministic and persisted blobs diff cleanly when hand-edited.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Remove deletes an element if present.
func (s Set[T]) Remove(e T) {
	delete(s, e)
}

// Has reports membership.
func (s Set[T]) Has(e T) bool {
	_, ok := s[e]
	return ok
}

// Toggle flips membership and reports whether the element is now present.
func (s Set[T]) Toggle(e T) bool {
	if s.Has(e) {
		delete(s, e)
		return false
	}
	s[e] = struct{}{}
	return true
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Clone returns an independent copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// ContainsAny reports whether any of the given elements is in the set.
// An empty set or empty slice never matches.
func (s Set[T]) ContainsAny(elems []T) bool {
	for _, e := range elems {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	encoded := make([]string, 0, len(s))
	for e := range s {
		b, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshal set element: %w", err)
		}
		encoded = append(encoded, string(b))
	}
	sort.Strings(encoded)

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range encoded {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(e)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into the set, replacing any existing
// elements. Element decode errors (including unknown enumeration labels)
// propagate to the caller.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	out := make(Set[T], len(elems))
	for _, e := range elems {
		out[e] = struct{}{}
	}
	*s = out
	return nil
}

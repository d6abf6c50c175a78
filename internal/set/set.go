// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package set

import "sort"

// NameSet is an unordered set of names.
type NameSet map[string]struct{}

// NewNameSet returns a NameSet holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name. Adding to a nil set panics, so callers must start from
// NewNameSet.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names.
func (s NameSet) Len() int {
	return len(s)
}

// Minus returns the names in s that are not in other.
func (s NameSet) Minus(other NameSet) NameSet {
	out := NewNameSet()
	for n := range s {
		if !other.Has(n) {
			out.Add(n)
		}
	}
	return out
}

// Equal reports whether both sets hold exactly the same names.
func (s NameSet) Equal(other NameSet) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

// Sorted returns the names in ascending order. The result is never nil.
func (s NameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// VersionMap maps an installed package name to its version string. Versions
// are opaque and may contain spaces when several versions coexist.
type VersionMap map[string]string

// Names returns the package names as a NameSet.
func (m VersionMap) Names() NameSet {
	s := make(NameSet, len(m))
	for n := range m {
		s[n] = struct{}{}
	}
	return s
}

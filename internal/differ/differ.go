// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"sort"

	"github.com/tfctl/repdiff/internal/record"
)

// Set is an unordered set of component names.
type Set map[string]struct{}

// NewSet builds a Set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in ascending byte order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Result is the three-way difference between two reports. The sets are
// pairwise disjoint; every name in both reports that is not in Changed has an
// identical record on both sides.
type Result struct {
	OnlyInFirst  Set
	OnlyInSecond Set
	Changed      Set
}

// Empty reports whether the two reports hold the same records.
func (r Result) Empty() bool {
	return r.OnlyInFirst.Len() == 0 && r.OnlyInSecond.Len() == 0 && r.Changed.Len() == 0
}

// Compare returns the names only in first, the names only in second, and the
// names in both whose version or size differ. Values are compared exactly.
func Compare(first, second record.Records) Result {
	result := Result{
		OnlyInFirst:  Set{},
		OnlyInSecond: Set{},
		Changed:      Set{},
	}

	for name, r1 := range first {
		r2, ok := second[name]
		switch {
		case !ok:
			result.OnlyInFirst[name] = struct{}{}
		case !r1.Equal(r2):
			result.Changed[name] = struct{}{}
		}
	}

	for name := range second {
		if _, ok := first[name]; !ok {
			result.OnlyInSecond[name] = struct{}{}
		}
	}

	return result
}

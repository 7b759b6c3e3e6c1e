package automaton

import (
	"hash/fnv"
	"slices"
	"strconv"
	"strings"
)

var _ Hashable = StateSet{}

// StateSet An immutable set of NFA state ids. Under subset construction one StateSet is one
// DFA state. Ids are kept sorted and distinct, so two sets holding the same ids are equal no
// matter the order they were built in. The zero value is the empty set.
type StateSet struct {
	values   []string
	hashCode uint64
}

// NewStateSet Builds a set from ids in any order; duplicates collapse.
func NewStateSet(ids ...string) StateSet {
	values := slices.Clone(ids)
	slices.Sort(values)
	values = slices.Compact(values)
	return newSortedStateSet(values)
}

func newSortedStateSet(values []string) StateSet {
	// Order independent: a sum of mixed member hashes.
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += uint64(mix(hashString(v)))
	}
	return StateSet{values: values, hashCode: hashCode}
}

func hashString(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32())
}

// IDs Returns the sorted ids. The caller must not modify the returned slice.
func (s StateSet) IDs() []string {
	return s.values
}

func (s StateSet) Len() int {
	return len(s.values)
}

func (s StateSet) IsEmpty() bool {
	return len(s.values) == 0
}

func (s StateSet) Contains(id string) bool {
	_, ok := slices.BinarySearch(s.values, id)
	return ok
}

// Union Returns a new set holding the ids of both sets.
func (s StateSet) Union(other StateSet) StateSet {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	return NewStateSet(append(slices.Clone(s.values), other.values...)...)
}

// With Returns a new set with the given ids added.
func (s StateSet) With(ids ...string) StateSet {
	return s.Union(NewStateSet(ids...))
}

// SubsetOf Returns true if every id of s is in other.
func (s StateSet) SubsetOf(other StateSet) bool {
	for _, v := range s.values {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Key Canonical form of the set. Two sets are equal iff their keys are equal.
func (s StateSet) Key() string {
	quoted := make([]string, len(s.values))
	for i, v := range s.values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ",")
}

func (s StateSet) Hash() uint64 {
	return s.hashCode
}

func (s StateSet) Equals(other Hashable) bool {
	o, ok := other.(StateSet)
	if !ok {
		return false
	}
	return s.Equal(o)
}

// Equal Canonical set equality.
func (s StateSet) Equal(other StateSet) bool {
	return s.hashCode == other.hashCode && slices.Equal(s.values, other.values)
}

// String Renders the set as {A, B}.
func (s StateSet) String() string {
	return "{" + strings.Join(s.values, ", ") + "}"
}

package fsa

import (
	"slices"
)

var _ IntSet = &StateSet{}

// StateSet A mutable set of states, accumulated while computing the successors of a
// subset. It can be looked up directly in a HashMap keyed by FrozenIntSet.
type StateSet struct {
	members     map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		members: make(map[int]struct{}),
	}
}

func (s *StateSet) Hash() uint64 {
	if !s.hashUpdated {
		s.hashCode = hashStates(s.GetArray())
		s.hashUpdated = true
	}
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	set, ok := other.(IntSet)
	if !ok || isNilIntSet(set) {
		return false
	}
	return s.Hash() == set.Hash() && slices.Equal(s.GetArray(), set.GetArray())
}

func (s *StateSet) GetArray() []int {
	var keys []int
	for k := range s.members {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.members)
}

// Add Adds states to the set.
func (s *StateSet) Add(states ...int) {
	for _, state := range states {
		if _, ok := s.members[state]; !ok {
			s.members[state] = struct{}{}
			s.hashUpdated = false
		}
	}
}

// Freeze Returns an immutable copy of the current members, bound to state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}

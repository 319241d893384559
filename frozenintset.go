package fsa

import "slices"

// IntSet A set of states usable as a HashMap key.
type IntSet interface {
	Hashable

	// GetArray Returns the members in ascending order.
	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable set of NFA states together with the DFA state it was
// assigned during subset construction.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Reports whether other is an IntSet with the same members. The assigned
// state does not take part.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch o := other.(type) {
		case *FrozenIntSet:
			return o == nil
		case *StateSet:
			return o == nil
		default:
			return false
		}
	}

	set, ok := other.(IntSet)
	if !ok || isNilIntSet(set) {
		return false
	}
	if set.Hash() != f.Hash() {
		return false
	}
	return slices.Equal(f.values, set.GetArray())
}

func isNilIntSet(set IntSet) bool {
	switch s := set.(type) {
	case *FrozenIntSet:
		return s == nil
	case *StateSet:
		return s == nil
	}
	return false
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the state this set was frozen for.
func (f *FrozenIntSet) State() int {
	return f.state
}

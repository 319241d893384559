package fsa

import "github.com/bits-and-blooms/bitset"

// EpsilonClosure Returns, for every state, the set of states reachable from it through
// epsilon transitions only, including the state itself.
func EpsilonClosure(a *Automaton) []*bitset.BitSet {
	numStates := a.GetNumStates()
	closures := make([]*bitset.BitSet, numStates)

	for i := 0; i < numStates; i++ {
		closure := bitset.New(uint(numStates))
		closure.Set(uint(i))

		// Expand from the states added in the previous round until a round adds nothing;
		// states on an epsilon cycle are already in the closure the second time round.
		frontier := []int{i}
		for len(frontier) > 0 {
			next := make([]int, 0)
			for _, s := range frontier {
				for _, d := range a.Destinations(s, Epsilon) {
					if !closure.Test(uint(d)) {
						closure.Set(uint(d))
						next = append(next, d)
					}
				}
			}
			frontier = next
		}

		closures[i] = closure
	}

	return closures
}

// RemoveEpsilons Returns an automaton over the same states that accepts the same
// language and has no epsilon transition. A state becomes an accept state if its
// epsilon closure contains one.
func RemoveEpsilons(a *Automaton) *Automaton {
	numStates := a.GetNumStates()
	closures := EpsilonClosure(a)

	result := NewAutomatonV1(a.alphabet, a.name, numStates)
	result.createStates(numStates)

	for i := 0; i < numStates; i++ {
		if closures[i].IntersectionCardinality(a.getAcceptStates()) > 0 {
			result.SetAccept(i, true)
		}
	}

	dest := bitset.New(uint(numStates))
	for i := 0; i < numStates; i++ {
		for _, x := range a.alphabet {
			dest.ClearAll()
			for p, ok := closures[i].NextSet(0); ok; p, ok = closures[i].NextSet(p + 1) {
				for _, q := range a.Destinations(int(p), x) {
					dest.InPlaceUnion(closures[q])
				}
			}
			if dest.None() {
				continue
			}
			result.addTransition(i, x, toInts(dest)...)
		}
	}

	return result
}

func toInts(set *bitset.BitSet) []int {
	ints := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		ints = append(ints, int(s))
	}
	return ints
}

package fsa

import "github.com/bits-and-blooms/bitset"

// Run Returns true if the deterministic automaton a accepts s. Only the first
// destination of each transition is followed.
func Run(a *Automaton, s string) bool {
	state := 0
	for _, v := range s {
		nextState := a.Step(state, int(v))
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}

// Accepts Returns true if a accepts s. Unlike Run it works on any automaton, epsilon
// transitions and several destinations included, by tracking the set of states every
// prefix of s can reach.
func Accepts(a *Automaton, s string) bool {
	if a.GetNumStates() == 0 {
		return false
	}
	closures := EpsilonClosure(a)

	current := closures[0].Clone()
	next := bitset.New(uint(a.GetNumStates()))
	for _, v := range s {
		next.ClearAll()
		for p, ok := current.NextSet(0); ok; p, ok = current.NextSet(p + 1) {
			for _, q := range a.Destinations(int(p), int(v)) {
				next.InPlaceUnion(closures[q])
			}
		}
		if next.None() {
			return false
		}
		current, next = next, current
	}
	return current.IntersectionCardinality(a.getAcceptStates()) > 0
}

package fsa

// Determinize Determinizes the given epsilon-free automaton by subset construction.
// Subsets are explored breadth first from {0}; each newly reached subset gets the next
// state id. No transition is added when a symbol leads nowhere, so the result may be
// partial. Worst case complexity: exponential in number of states.
//
// The input must not have epsilon transitions (see RemoveEpsilons); this is not
// checked.
func Determinize(a *Automaton) *Automaton {
	result := NewAutomaton(a.alphabet, a.name)
	if a.GetNumStates() == 0 {
		result.CreateState()
		return result
	}

	// Every discovered subset is interned once and numbered by discovery order;
	// lookups use the unfrozen StateSet.
	newState := NewHashMap[int](WithCapacity(a.GetNumStates()))

	initial := NewStateSet()
	initial.Add(0)
	initialSet := initial.Freeze(newState.Size())
	newState.Set(initialSet, initialSet.State())
	result.CreateState()
	result.SetAccept(0, a.IsAccept(0))

	worklist := []*FrozenIntSet{initialSet}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		for _, c := range a.alphabet {
			t := NewStateSet()
			for _, q := range s.GetArray() {
				t.Add(a.Destinations(q, c)...)
			}
			if t.Size() == 0 {
				continue
			}

			dest, ok := newState.Get(t)
			if !ok {
				dest = newState.Size()
				frozen := t.Freeze(dest)
				newState.Set(frozen, dest)
				result.CreateState()
				worklist = append(worklist, frozen)
				result.SetAccept(dest, anyAccept(a, frozen.GetArray()))
			}
			result.addTransition(s.State(), c, dest)
		}
	}

	return result
}

func anyAccept(a *Automaton, states []int) bool {
	for _, s := range states {
		if a.IsAccept(s) {
			return true
		}
	}
	return false
}

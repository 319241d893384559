package fsa

// Reduce Returns the canonical minimal complete DFA of a: epsilon removal, then
// determinization, completion and minimization. The order is fixed, each step
// relying on the one before.
func Reduce(a *Automaton) *Automaton {
	a = RemoveEpsilons(a)
	a = Determinize(a)
	a = Totalize(a)
	return Minimize(a)
}

// Equivalent Returns true if a1 and a2 accept the same language.
//
// Both are reduced first; two minimal complete DFAs whose states are all reachable
// accept the same language iff they are isomorphic from their initial states, which
// is checked by walking both in lockstep from (0, 0).
func Equivalent(a1, a2 *Automaton) bool {
	a1 = Reduce(a1)
	a2 = Reduce(a2)

	if !a1.Alphabet().Equal(a2.Alphabet()) || a1.GetNumStates() != a2.GetNumStates() {
		return false
	}

	mapping := map[int]int{0: 0}
	workList := []int{0}
	for len(workList) > 0 {
		q1 := workList[0]
		workList = workList[1:]
		q2 := mapping[q1]

		if a1.IsAccept(q1) != a2.IsAccept(q2) {
			return false
		}

		for _, c := range a1.Alphabet() {
			r1 := a1.Step(q1, c)
			r2 := a2.Step(q2, c)
			if partner, ok := mapping[r1]; ok {
				if partner != r2 {
					return false
				}
				continue
			}
			mapping[r1] = r2
			workList = append(workList, r1)
		}
	}

	return true
}

package fsa

import "fmt"

// Shift Returns a copy of a with every state id, accept states and transition
// destinations included, moved by offset. The state count is copied unchanged: the
// shifted ids may lie beyond it, and callers that lay several automata side by side
// set the count of the combined automaton themselves. With a negative offset, states
// that would fall below 0 are dropped along with their transitions.
func Shift(a *Automaton, offset int) *Automaton {
	result := NewAutomatonV1(a.alphabet, a.name, max(a.numStates+offset, 0))
	result.createStates(a.numStates)

	for _, s := range a.Finals() {
		if s+offset >= 0 {
			result.SetAccept(s+offset, true)
		}
	}
	for s, bySymbol := range a.transitions {
		if s+offset < 0 {
			continue
		}
		for symbol, dests := range bySymbol {
			shifted := make([]int, 0, len(dests))
			for _, d := range dests {
				if d+offset >= 0 {
					shifted = append(shifted, d+offset)
				}
			}
			if len(shifted) > 0 {
				result.addTransition(s+offset, symbol, shifted...)
			}
		}
	}
	return result
}

// copyTransitions Adds every transition of src to dst, which must have at least as many
// states as src.
func copyTransitions(dst, src *Automaton) {
	for s, bySymbol := range src.transitions {
		for symbol, dests := range bySymbol {
			dst.addTransition(s, symbol, dests...)
		}
	}
}

func checkAlphabets(a1, a2 *Automaton) error {
	if !a1.alphabet.Equal(a2.alphabet) {
		return fmt.Errorf("%w: %q and %q", ErrAlphabetMismatch, a1.alphabet.String(), a2.alphabet.String())
	}
	return nil
}

// Concatenate Returns an automaton for L(a1)·L(a2). The states of a1 keep their ids,
// the states of a2 follow them, and every accept state of a1 gets an epsilon
// transition to the initial state of a2.
func Concatenate(a1, a2 *Automaton) (*Automaton, error) {
	if err := checkAlphabets(a1, a2); err != nil {
		return nil, err
	}

	numStates := a1.numStates + a2.numStates
	result := NewAutomatonV1(a1.alphabet, fmt.Sprintf("(%s.%s)", a1.name, a2.name), numStates)
	result.createStates(numStates)

	shifted := Shift(a2, a1.numStates)
	copyTransitions(result, a1)
	copyTransitions(result, shifted)

	initial := a1.numStates
	for _, f := range a1.Finals() {
		result.addTransition(f, Epsilon, initial)
	}
	result.getAcceptStates().InPlaceUnion(shifted.getAcceptStates())

	return result, nil
}

// Union Returns an automaton for L(a1) ∪ L(a2): a new initial state with epsilon
// transitions to the initial states of a1 and a2, laid out after it.
func Union(a1, a2 *Automaton) (*Automaton, error) {
	if err := checkAlphabets(a1, a2); err != nil {
		return nil, err
	}

	numStates := 1 + a1.numStates + a2.numStates
	result := NewAutomatonV1(a1.alphabet, fmt.Sprintf("(%s+%s)", a1.name, a2.name), numStates)
	result.createStates(numStates)

	shifted1 := Shift(a1, 1)
	shifted2 := Shift(a2, 1+a1.numStates)
	copyTransitions(result, shifted1)
	copyTransitions(result, shifted2)

	result.addTransition(0, Epsilon, 1, 1+a1.numStates)

	result.getAcceptStates().InPlaceUnion(shifted1.getAcceptStates())
	result.getAcceptStates().InPlaceUnion(shifted2.getAcceptStates())

	return result, nil
}

// Star Returns an automaton for L(a)*. The new initial state 0 accepts the empty
// string; every accept state of a loops back to the start of a or stops at 0.
func Star(a *Automaton) *Automaton {
	numStates := a.numStates + 1
	result := NewAutomatonV1(a.alphabet, fmt.Sprintf("(%s)*", a.name), numStates)
	result.createStates(numStates)

	shifted := Shift(a, 1)
	copyTransitions(result, shifted)

	result.SetAccept(0, true)
	result.addTransition(0, Epsilon, 1)
	for _, f := range shifted.Finals() {
		result.SetAccept(f, true)
		result.addTransition(f, Epsilon, 1, 0)
	}

	return result
}

// Totalize Returns a copy of the deterministic automaton a where every missing
// (state, symbol) transition leads to a single new dead state, which loops on every
// symbol. If nothing is missing, the copy has no extra state.
func Totalize(a *Automaton) *Automaton {
	result := NewAutomatonV1(a.alphabet, a.name, a.numStates+1)
	result.createStates(a.numStates)
	result.getAcceptStates().InPlaceUnion(a.getAcceptStates())
	copyTransitions(result, a)

	deadState := -1
	for s := 0; s < a.numStates; s++ {
		for _, c := range a.alphabet {
			if len(a.Destinations(s, c)) > 0 {
				continue
			}
			if deadState == -1 {
				deadState = result.CreateState()
			}
			result.addTransition(s, c, deadState)
		}
	}

	if deadState != -1 {
		for _, c := range a.alphabet {
			result.addTransition(deadState, c, deadState)
		}
	}

	return result
}

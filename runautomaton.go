package fsa

import "fmt"

// RunAutomaton A table-driven matcher compiled from a total deterministic automaton,
// e.g. the result of Reduce.
type RunAutomaton struct {
	alphabet Alphabet
	size     int
	accept   []bool
	// transitions[state*alphabet.Len()+index of symbol] is the destination, or -1.
	transitions []int
}

// NewRunAutomaton Compiles a, which must be deterministic.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("%w: run automaton requires a deterministic automaton", ErrInvalidArgument)
	}

	numStates := a.GetNumStates()
	width := a.alphabet.Len()
	r := &RunAutomaton{
		alphabet:    a.alphabet,
		size:        numStates,
		accept:      make([]bool, numStates),
		transitions: make([]int, numStates*width),
	}
	for s := 0; s < numStates; s++ {
		r.accept[s] = a.IsAccept(s)
		for i, c := range a.alphabet {
			r.transitions[s*width+i] = a.Step(s, c)
		}
	}
	return r, nil
}

// GetSize Returns number of states in automaton.
func (r *RunAutomaton) GetSize() int {
	return r.size
}

// IsAccept Returns acceptance status for given state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step Returns the state obtained by reading the given symbol from the given state,
// or -1 if there is none (including symbols outside the alphabet).
func (r *RunAutomaton) Step(state, symbol int) int {
	i := r.alphabet.Index(symbol)
	if i == -1 {
		return -1
	}
	return r.transitions[state*r.alphabet.Len()+i]
}

// Run Returns true if the given string is accepted by this automaton.
func (r *RunAutomaton) Run(s string) bool {
	if r.size == 0 {
		return false
	}
	p := 0
	for _, v := range s {
		p = r.Step(p, int(v))
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}

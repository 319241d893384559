package fsa

import "fmt"

// Automata builds elementary automata over a fixed alphabet.
type Automata struct {
	alphabet Alphabet
}

func NewAutomata(alphabet Alphabet) *Automata {
	return &Automata{alphabet: alphabet}
}

func (f *Automata) Alphabet() Alphabet {
	return f.alphabet
}

// Make
// Returns the elementary automaton for symbol: the empty language for EmptyLanguage,
// the empty string for Epsilon, or the single-symbol language for an alphabet member.
func (f *Automata) Make(symbol int) (*Automaton, error) {
	switch {
	case symbol == EmptyLanguage:
		return f.MakeEmpty(), nil
	case symbol == Epsilon:
		return f.MakeEmptyString(), nil
	case f.alphabet.Contains(symbol):
		return f.MakeSymbol(symbol)
	default:
		return nil, fmt.Errorf("%w: %q is neither in alphabet %q nor a meta symbol",
			ErrInvalidSymbol, symbolString(symbol), f.alphabet.String())
	}
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (f *Automata) MakeEmpty() *Automaton {
	a := NewAutomaton(f.alphabet, "")
	a.CreateState()
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (f *Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton(f.alphabet, "("+symbolString(Epsilon)+")")
	a.CreateState()
	a.SetAccept(0, true)
	return a
}

// MakeSymbol
// Returns a new (deterministic) automaton that accepts a single symbol.
func (f *Automata) MakeSymbol(symbol int) (*Automaton, error) {
	if !f.alphabet.Contains(symbol) {
		return nil, fmt.Errorf("%w: %q is not in alphabet %q", ErrInvalidSymbol, symbolString(symbol), f.alphabet.String())
	}
	a := NewAutomaton(f.alphabet, "("+symbolString(symbol)+")")
	s := a.CreateState()
	d := a.CreateState()
	a.SetAccept(d, true)
	if err := a.AddTransition(s, symbol, []int{d}); err != nil {
		return nil, err
	}
	return a, nil
}

package fsa

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// Epsilon labels a transition that consumes no input. Passed to Automata.Make it
	// yields the automaton of the empty string.
	Epsilon = -1

	// EmptyLanguage is only meaningful to Automata.Make, where it yields the automaton
	// that accepts nothing.
	EmptyLanguage = -2
)

var (
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlphabetMismatch = errors.New("alphabets do not match")
)

// Alphabet An ordered, duplicate-free set of input symbols. Meta symbols (Epsilon,
// EmptyLanguage) are never members.
type Alphabet []int

// NewAlphabet Sorts and deduplicates the given symbols.
func NewAlphabet(symbols ...rune) (Alphabet, error) {
	alphabet := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		if s < 0 {
			return nil, fmt.Errorf("%w: %d cannot be an alphabet member", ErrInvalidSymbol, s)
		}
		alphabet = append(alphabet, int(s))
	}
	slices.Sort(alphabet)
	return slices.Compact(alphabet), nil
}

// AlphabetOf Returns the alphabet made of the runes of s.
func AlphabetOf(s string) Alphabet {
	// runes of a string are never negative
	alphabet, _ := NewAlphabet([]rune(s)...)
	return alphabet
}

func (al Alphabet) Len() int {
	return len(al)
}

// Index Returns the position of symbol in the alphabet, or -1.
func (al Alphabet) Index(symbol int) int {
	i, ok := slices.BinarySearch(al, symbol)
	if !ok {
		return -1
	}
	return i
}

func (al Alphabet) Contains(symbol int) bool {
	return al.Index(symbol) >= 0
}

func (al Alphabet) Equal(other Alphabet) bool {
	return slices.Equal(al, other)
}

// Symbols Returns a copy of the symbols in ascending order.
func (al Alphabet) Symbols() []int {
	return slices.Clone(al)
}

func (al Alphabet) String() string {
	b := new(strings.Builder)
	for _, s := range al {
		b.WriteRune(rune(s))
	}
	return b.String()
}

func symbolString(symbol int) string {
	switch symbol {
	case Epsilon:
		return "ε"
	case EmptyLanguage:
		return "∅"
	default:
		return string(rune(symbol))
	}
}

// Automaton Represents a finite automaton over an alphabet. States are the integers
// 0..GetNumStates()-1 and must be created using CreateState. State 0 is always the
// initial state. Mark a state as an accept state using SetAccept and add transitions
// with AddTransition; a transition entry maps a (state, symbol) pair to a sorted set of
// destinations, and entries only ever grow.
//
// An automaton is mutable only while it is being built. Every operation in this
// package reads its inputs without modifying them and returns a fresh automaton.
type Automaton struct {
	alphabet Alphabet

	numStates int

	isAccept *bitset.BitSet

	// state -> symbol -> sorted destinations. A missing key means no transition.
	transitions map[int]map[int][]int

	// Reflects the expression the automaton was built from; purely cosmetic.
	name string
}

// NewAutomaton Returns an automaton without states over the given alphabet.
func NewAutomaton(alphabet Alphabet, name string) *Automaton {
	return NewAutomatonV1(alphabet, name, 2)
}

func NewAutomatonV1(alphabet Alphabet, name string, numStates int) *Automaton {
	return &Automaton{
		alphabet:    alphabet,
		isAccept:    bitset.New(uint(numStates)),
		transitions: make(map[int]map[int][]int, numStates),
		name:        name,
	}
}

// CreateState Create a new state.
func (a *Automaton) CreateState() int {
	state := a.numStates
	a.numStates++
	return state
}

// createStates Creates count states at once and returns the first one.
func (a *Automaton) createStates(count int) int {
	first := a.numStates
	a.numStates += count
	return first
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// Finals Returns the accept states in ascending order.
func (a *Automaton) Finals() []int {
	finals := make([]int, 0, a.isAccept.Count())
	for s, ok := a.isAccept.NextSet(0); ok; s, ok = a.isAccept.NextSet(s + 1) {
		finals = append(finals, int(s))
	}
	return finals
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	return a.isAccept
}

// AddTransition Adds dests to the transition entry of (source, symbol), keeping any
// destinations the entry already has. A nil dests is rejected since it is not a
// collection of states; an empty one is a no-op.
//
// Unlike the internal accumulator used by the combinators, AddTransition also
// validates its other arguments: a state id outside 0..GetNumStates()-1 fails with
// ErrInvalidArgument, and a symbol that is neither Epsilon nor in the alphabet fails
// with ErrInvalidSymbol. Nothing is added when an error is returned.
func (a *Automaton) AddTransition(source, symbol int, dests []int) error {
	if dests == nil {
		return fmt.Errorf("%w: destinations of (%d, %s) must be a list of states", ErrInvalidArgument, source, symbolString(symbol))
	}
	if source < 0 || source >= a.numStates {
		return fmt.Errorf("%w: source state %d out of range [0, %d)", ErrInvalidArgument, source, a.numStates)
	}
	if symbol != Epsilon && !a.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: %s is not in alphabet %q", ErrInvalidSymbol, symbolString(symbol), a.alphabet.String())
	}
	for _, d := range dests {
		if d < 0 || d >= a.numStates {
			return fmt.Errorf("%w: destination state %d out of range [0, %d)", ErrInvalidArgument, d, a.numStates)
		}
	}
	if len(dests) == 0 {
		return nil
	}
	a.addTransition(source, symbol, dests...)
	return nil
}

// addTransition is AddTransition for callers that already guarantee valid arguments.
func (a *Automaton) addTransition(source, symbol int, dests ...int) {
	bySymbol, ok := a.transitions[source]
	if !ok {
		bySymbol = make(map[int][]int)
		a.transitions[source] = bySymbol
	}
	current := bySymbol[symbol]
	for _, d := range dests {
		i, found := slices.BinarySearch(current, d)
		if !found {
			current = slices.Insert(current, i, d)
		}
	}
	bySymbol[symbol] = current
}

// Alphabet Returns the input alphabet.
func (a *Automaton) Alphabet() Alphabet {
	return a.alphabet
}

// Name Returns the name derived from the construction rules.
func (a *Automaton) Name() string {
	return a.name
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return a.numStates
}

// NumTransitions How many (state, symbol) entries this automaton has.
func (a *Automaton) NumTransitions() int {
	count := 0
	for _, bySymbol := range a.transitions {
		count += len(bySymbol)
	}
	return count
}

// Destinations Returns the destinations of (state, symbol) in ascending order, or nil
// if there is no such transition. The result must not be modified.
func (a *Automaton) Destinations(state, symbol int) []int {
	return a.transitions[state][symbol]
}

// Symbols Returns the symbols that have a transition entry leaving state, in ascending
// order (Epsilon first).
func (a *Automaton) Symbols(state int) []int {
	bySymbol := a.transitions[state]
	symbols := make([]int, 0, len(bySymbol))
	for symbol := range bySymbol {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Step Performs lookup in transitions, assuming determinism.
// Returns the destination state, -1 if no matching outgoing transition.
func (a *Automaton) Step(state, symbol int) int {
	dests := a.transitions[state][symbol]
	if len(dests) == 0 {
		return -1
	}
	return dests[0]
}

// HasEpsilon Returns true if some state has an epsilon transition.
func (a *Automaton) HasEpsilon() bool {
	for _, bySymbol := range a.transitions {
		if _, ok := bySymbol[Epsilon]; ok {
			return true
		}
	}
	return false
}

// IsDeterministic Returns true if this automaton has no epsilon transition and at most
// one destination per (state, symbol).
func (a *Automaton) IsDeterministic() bool {
	for _, bySymbol := range a.transitions {
		for symbol, dests := range bySymbol {
			if symbol == Epsilon || len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// IsTotal Returns true if this automaton is deterministic and has a transition for
// every state and every alphabet symbol.
func (a *Automaton) IsTotal() bool {
	if !a.IsDeterministic() {
		return false
	}
	for s := 0; s < a.numStates; s++ {
		for _, c := range a.alphabet {
			if len(a.transitions[s][c]) != 1 {
				return false
			}
		}
	}
	return true
}

// String Human-readable dump, for debugging only.
func (a *Automaton) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "Automaton %s\n", a.name)
	fmt.Fprintf(b, "States %d\n", a.numStates)
	fmt.Fprintf(b, "Finals %v\n", a.Finals())
	b.WriteString("Transitions:\n")
	for s := 0; s < a.numStates; s++ {
		for _, symbol := range a.Symbols(s) {
			fmt.Fprintf(b, "(%d, %s): %v\n", s, symbolString(symbol), a.transitions[s][symbol])
		}
	}
	b.WriteString("*********************************")
	return b.String()
}

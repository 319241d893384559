package fsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var abc = AlphabetOf("abc")

func symbol(t *testing.T, f *Automata, c rune) *Automaton {
	t.Helper()
	a, err := f.Make(int(c))
	require.NoError(t, err)
	return a
}

// words Returns every string over alphabet of length at most maxLen, shortest first.
func words(alphabet Alphabet, maxLen int) []string {
	result := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(layer)*alphabet.Len())
		for _, w := range layer {
			for _, c := range alphabet {
				next = append(next, w+string(rune(c)))
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

// sameLanguage Checks that a and b agree on every string up to maxLen symbols.
func sameLanguage(t *testing.T, a, b *Automaton, maxLen int) {
	t.Helper()
	for _, w := range words(a.Alphabet(), maxLen) {
		require.Equalf(t, Accepts(a, w), Accepts(b, w), "disagree on %q", w)
	}
}

// mustBuild Builds an automaton over abc from explicit finals and transitions.
func mustBuild(t *testing.T, numStates int, finals []int, transitions map[[2]int][]int) *Automaton {
	t.Helper()
	a := NewAutomaton(abc, "")
	for i := 0; i < numStates; i++ {
		a.CreateState()
	}
	for _, f := range finals {
		a.SetAccept(f, true)
	}
	for k, dests := range transitions {
		require.NoError(t, a.AddTransition(k[0], k[1], dests))
	}
	return a
}

package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	f := NewAutomata(abc)
	e := NewConcatenation(NewRepeat(NewSymbol('a')), NewSymbol('b'))
	nfa, err := e.ToAutomaton(f)
	require.NoError(t, err)
	dfa := Reduce(nfa)

	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", false},
		{"single b", "b", true},
		{"as then b", "aaab", true},
		{"trailing symbol", "abc", false},
		{"outside alphabet", "xb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(dfa, tt.s), "Run(%v, %v)", dfa.Name(), tt.s)
			assert.Equalf(t, tt.want, Accepts(nfa, tt.s), "Accepts(%v, %v)", nfa.Name(), tt.s)
		})
	}

	assert.False(t, Accepts(NewAutomaton(abc, ""), ""))
}

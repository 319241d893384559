package fsa

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	f := NewAutomata(abc)
	a := symbol(t, f, 'a')

	b := Shift(a, 3)
	assert.Equal(t, []int{1}, a.Destinations(0, 'a'), "input must not change")
	assert.Equal(t, []int{1}, a.Finals())

	assert.Equal(t, a.GetNumStates(), b.GetNumStates(), "state count is not shifted")
	assert.Equal(t, []int{4}, b.Destinations(3, 'a'))
	assert.Nil(t, b.Destinations(0, 'a'))
	assert.Equal(t, []int{4}, b.Finals())
	assert.Equal(t, a.Name(), b.Name())

	t.Run("shifting back restores the language", func(t *testing.T) {
		u, err := Union(Star(a), symbol(t, f, 'b'))
		require.NoError(t, err)

		back := Shift(Shift(u, 4), -4)
		assert.Equal(t, u.String(), back.String())
		sameLanguage(t, u, back, 4)
	})

	t.Run("states below zero are dropped", func(t *testing.T) {
		x := mustBuild(t, 3, []int{0, 2}, map[[2]int][]int{
			{0, 'a'}: {1, 2},
			{1, 'b'}: {0, 2},
		})

		y := Shift(x, -1)
		assert.Equal(t, 3, y.GetNumStates())
		assert.Equal(t, []int{1}, y.Finals())
		assert.Equal(t, []int{1}, y.Destinations(0, 'b'))
		assert.Equal(t, 1, y.NumTransitions())

		z := Shift(x, -5)
		assert.Equal(t, 3, z.GetNumStates())
		assert.Empty(t, z.Finals())
		assert.Zero(t, z.NumTransitions())
	})
}

func TestConcatenate(t *testing.T) {
	f := NewAutomata(abc)
	a1, a2 := symbol(t, f, 'a'), symbol(t, f, 'b')

	c, err := Concatenate(a1, a2)
	require.NoError(t, err)

	assert.Equal(t, 4, c.GetNumStates())
	assert.Equal(t, []int{2}, c.Destinations(1, Epsilon))
	assert.Equal(t, []int{3}, c.Destinations(2, 'b'))
	assert.Equal(t, []int{3}, c.Finals())
	assert.Equal(t, "((a).(b))", c.Name())

	// operands untouched
	assert.Nil(t, a1.Destinations(1, Epsilon))
	assert.Equal(t, []int{1}, a2.Destinations(0, 'b'))

	for _, w := range words(abc, 3) {
		assert.Equal(t, w == "ab", Accepts(c, w), w)
	}
}

func TestUnion(t *testing.T) {
	f := NewAutomata(abc)
	a1, a2 := symbol(t, f, 'a'), symbol(t, f, 'b')

	u, err := Union(a1, a2)
	require.NoError(t, err)

	assert.Equal(t, 5, u.GetNumStates())
	assert.Equal(t, []int{1, 1 + a1.GetNumStates()}, u.Destinations(0, Epsilon))
	assert.Len(t, u.Finals(), 2)
	assert.Equal(t, "((a)+(b))", u.Name())

	for _, w := range words(abc, 3) {
		assert.Equal(t, w == "a" || w == "b", Accepts(u, w), w)
	}
}

func TestStar(t *testing.T) {
	f := NewAutomata(abc)
	s := Star(symbol(t, f, 'c'))

	assert.Equal(t, 3, s.GetNumStates())
	assert.Equal(t, []int{0, 2}, s.Finals())
	assert.Equal(t, []int{1}, s.Destinations(0, Epsilon))
	assert.Equal(t, []int{0, 1}, s.Destinations(2, Epsilon))
	assert.Equal(t, "((c))*", s.Name())

	for _, w := range words(abc, 4) {
		assert.Equal(t, regexp.MustCompile(`^c*$`).MatchString(w), Accepts(s, w), w)
	}
}

func TestCombinatorLanguages(t *testing.T) {
	f := NewAutomata(abc)
	ab, err := Concatenate(symbol(t, f, 'a'), symbol(t, f, 'b'))
	require.NoError(t, err)
	abOrC, err := Union(ab, symbol(t, f, 'c'))
	require.NoError(t, err)
	star := Star(abOrC)
	full, err := Concatenate(star, Star(symbol(t, f, 'a')))
	require.NoError(t, err)

	tests := []struct {
		name string
		a    *Automaton
		re   string
	}{
		{"concat", ab, `^ab$`},
		{"union", abOrC, `^(?:ab|c)$`},
		{"star", star, `^(?:ab|c)*$`},
		{"nested", full, `^(?:ab|c)*a*$`},
		{"star of empty", Star(f.MakeEmpty()), `^$`},
		{"concat with empty", mustConcat(t, ab, f.MakeEmpty()), `^\b\B$`},
		{"union with epsilon", mustUnion(t, f.MakeEmptyString(), ab), `^(?:ab)?$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.re)
			for _, w := range words(abc, 5) {
				assert.Equal(t, re.MatchString(w), Accepts(tt.a, w), w)
			}
		})
	}
}

func mustConcat(t *testing.T, a1, a2 *Automaton) *Automaton {
	t.Helper()
	c, err := Concatenate(a1, a2)
	require.NoError(t, err)
	return c
}

func mustUnion(t *testing.T, a1, a2 *Automaton) *Automaton {
	t.Helper()
	u, err := Union(a1, a2)
	require.NoError(t, err)
	return u
}

func TestAlphabetMismatch(t *testing.T) {
	a := symbol(t, NewAutomata(abc), 'a')
	b := symbol(t, NewAutomata(AlphabetOf("ab")), 'a')

	_, err := Concatenate(a, b)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
	_, err = Union(a, b)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestTotalize(t *testing.T) {
	t.Run("adds a single dead state", func(t *testing.T) {
		dfa := mustBuild(t, 3, []int{1, 2}, map[[2]int][]int{
			{0, 'a'}: {1},
			{1, 'b'}: {2},
		})
		total := Totalize(dfa)

		assert.Equal(t, 4, total.GetNumStates())
		assert.True(t, total.IsTotal())
		assert.Equal(t, []int{3}, total.Destinations(0, 'b'))
		assert.Equal(t, []int{3}, total.Destinations(2, 'c'))
		for _, c := range abc {
			assert.Equal(t, []int{3}, total.Destinations(3, c))
		}
		assert.Equal(t, []int{1, 2}, total.Finals())
		assert.Equal(t, 3, dfa.GetNumStates(), "input must not change")
		assert.False(t, dfa.IsTotal())
		sameLanguage(t, dfa, total, 4)
	})

	t.Run("complete input is unchanged", func(t *testing.T) {
		dfa := mustBuild(t, 2, []int{1}, map[[2]int][]int{
			{0, 'a'}: {1}, {0, 'b'}: {0}, {0, 'c'}: {0},
			{1, 'a'}: {1}, {1, 'b'}: {0}, {1, 'c'}: {1},
		})
		total := Totalize(dfa)
		assert.Equal(t, dfa.String(), total.String())
	})
}

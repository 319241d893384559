package exprfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geange/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acOrBc = `
alphabet: abc
expr:
  concat:
    - union: [{symbol: a}, {symbol: b}]
    - symbol: c
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(acOrBc))
	require.NoError(t, err)
	assert.Equal(t, "abc", doc.Alphabet)

	e, err := doc.ToExpr()
	require.NoError(t, err)
	assert.Equal(t, "(((a)+(b)).(c))", e.String())

	a, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, e.String(), a.Name())
	assert.True(t, fsa.Accepts(a, "ac"))
	assert.True(t, fsa.Accepts(a, "bc"))
	assert.False(t, fsa.Accepts(a, "ca"))
}

func TestParseAllOperators(t *testing.T) {
	doc, err := Parse([]byte(`
alphabet: "01"
expr:
  union:
    - empty: true
    - epsilon: true
    - star:
        concat: [{symbol: "0"}, {symbol: "1"}]
`))
	require.NoError(t, err)

	a, err := doc.Build(fsa.WithIntermediateReduction(true))
	require.NoError(t, err)
	assert.True(t, a.IsTotal())
	for w, want := range map[string]bool{"": true, "01": true, "0101": true, "0": false, "10": false} {
		assert.Equal(t, want, fsa.Run(a, w), w)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"missing alphabet", "expr: {symbol: a}"},
		{"unknown key", "alphabet: ab\nexpr: {plus: {symbol: a}}"},
		{"not yaml", "alphabet: [ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestToExprErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no operator", "alphabet: ab\nexpr: {}"},
		{"two operators", "alphabet: ab\nexpr: {symbol: a, epsilon: true}"},
		{"long symbol", "alphabet: ab\nexpr: {symbol: ab}"},
		{"nested", "alphabet: ab\nexpr: {star: {union: [{symbol: a}, {}]}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			_, err = doc.ToExpr()
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}

	t.Run("error names the node", func(t *testing.T) {
		doc, err := Parse([]byte("alphabet: ab\nexpr: {star: {union: [{symbol: a}, {}]}}"))
		require.NoError(t, err)
		_, err = doc.ToExpr()
		assert.ErrorContains(t, err, "expr.star.union[1]")
	})
}

func TestBuildSymbolOutsideAlphabet(t *testing.T) {
	doc, err := Parse([]byte("alphabet: ab\nexpr: {symbol: c}"))
	require.NoError(t, err)
	_, err = doc.Build()
	assert.ErrorIs(t, err, fsa.ErrInvalidSymbol)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(acOrBc), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", doc.Alphabet)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("expr: {symbol: a}"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.ErrorContains(t, err, bad)
}

// Package exprfile reads expression documents: YAML files that describe an alphabet
// and an operator tree built from the regular operators.
//
//	alphabet: abc
//	expr:
//	  concat:
//	    - union: [{symbol: a}, {symbol: b}]
//	    - symbol: c
package exprfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/geange/fsa"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid expression document")

// Document is the content of an expression file.
type Document struct {
	Alphabet string `yaml:"alphabet"`
	Expr     Node   `yaml:"expr"`
}

// Node is one operator of the tree. Exactly one field must be set.
type Node struct {
	Empty   bool   `yaml:"empty,omitempty"`
	Epsilon bool   `yaml:"epsilon,omitempty"`
	Symbol  string `yaml:"symbol,omitempty"`
	Concat  []Node `yaml:"concat,omitempty"`
	Union   []Node `yaml:"union,omitempty"`
	Star    *Node  `yaml:"star,omitempty"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Alphabet == "" {
		return nil, fmt.Errorf("%w: alphabet is required", ErrInvalidDocument)
	}
	return &doc, nil
}

// ToExpr converts the tree into an fsa.Expr.
func (d *Document) ToExpr() (*fsa.Expr, error) {
	return d.Expr.toExpr("expr")
}

// Automata returns the factory of elementary automata for the document alphabet.
func (d *Document) Automata() *fsa.Automata {
	return fsa.NewAutomata(fsa.AlphabetOf(d.Alphabet))
}

// Build returns the automaton of the document, as assembled by the combinators.
func (d *Document) Build(options ...fsa.ExprOption) (*fsa.Automaton, error) {
	e, err := d.ToExpr()
	if err != nil {
		return nil, err
	}
	return e.ToAutomaton(d.Automata(), options...)
}

func (n *Node) toExpr(path string) (*fsa.Expr, error) {
	set := 0
	for _, ok := range []bool{n.Empty, n.Epsilon, n.Symbol != "", n.Concat != nil, n.Union != nil, n.Star != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: %s: exactly one of empty, epsilon, symbol, concat, union, star must be set", ErrInvalidDocument, path)
	}

	switch {
	case n.Empty:
		return fsa.NewEmpty(), nil
	case n.Epsilon:
		return fsa.NewEpsilon(), nil
	case n.Symbol != "":
		r, size := utf8.DecodeRuneInString(n.Symbol)
		if size != len(n.Symbol) {
			return nil, fmt.Errorf("%w: %s: symbol %q must be a single character", ErrInvalidDocument, path, n.Symbol)
		}
		return fsa.NewSymbol(r), nil
	case n.Star != nil:
		e, err := n.Star.toExpr(path + ".star")
		if err != nil {
			return nil, err
		}
		return fsa.NewRepeat(e), nil
	}

	operands, name := n.Concat, "concat"
	if n.Union != nil {
		operands, name = n.Union, "union"
	}
	exps := make([]*fsa.Expr, 0, len(operands))
	for i := range operands {
		e, err := operands[i].toExpr(fmt.Sprintf("%s.%s[%d]", path, name, i))
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	if name == "union" {
		return fsa.NewUnion(exps...), nil
	}
	return fsa.NewConcatenation(exps...), nil
}

package fsa

import (
	"fmt"
	"strings"
)

type Kind int

const (
	EXPR_EMPTY         = Kind(iota) // The empty language
	EXPR_EPSILON                    // The empty string
	EXPR_SYMBOL                     // A single symbol
	EXPR_CONCATENATION              // A sequence of two expressions
	EXPR_UNION                      // The union of two expressions
	EXPR_STAR                       // An expression that repeats zero or more times
)

func (k Kind) String() string {
	switch k {
	case EXPR_EMPTY:
		return "empty"
	case EXPR_EPSILON:
		return "epsilon"
	case EXPR_SYMBOL:
		return "symbol"
	case EXPR_CONCATENATION:
		return "concat"
	case EXPR_UNION:
		return "union"
	case EXPR_STAR:
		return "star"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expr An operator tree over the regular operators. It is built programmatically
// and turned into an automaton with ToAutomaton.
type Expr struct {
	kind       Kind
	exp1, exp2 *Expr
	c          int
}

func newContainerNode(kind Kind, exp1, exp2 *Expr) *Expr {
	return &Expr{kind: kind, exp1: exp1, exp2: exp2}
}

func NewEmpty() *Expr {
	return &Expr{kind: EXPR_EMPTY}
}

func NewEpsilon() *Expr {
	return &Expr{kind: EXPR_EPSILON}
}

func NewSymbol(c rune) *Expr {
	return &Expr{kind: EXPR_SYMBOL, c: int(c)}
}

// NewConcatenation Returns the concatenation of exps, folded to the left. No operand
// gives the empty string.
func NewConcatenation(exps ...*Expr) *Expr {
	return fold(EXPR_CONCATENATION, NewEpsilon, exps)
}

// NewUnion Returns the union of exps, folded to the left. No operand gives the empty
// language.
func NewUnion(exps ...*Expr) *Expr {
	return fold(EXPR_UNION, NewEmpty, exps)
}

func NewRepeat(exp *Expr) *Expr {
	return newContainerNode(EXPR_STAR, exp, nil)
}

func fold(kind Kind, identity func() *Expr, exps []*Expr) *Expr {
	if len(exps) == 0 {
		return identity()
	}
	e := exps[0]
	for _, next := range exps[1:] {
		e = newContainerNode(kind, e, next)
	}
	return e
}

func (r *Expr) Kind() Kind {
	return r.kind
}

// String Returns the expression written the way automaton names are.
func (r *Expr) String() string {
	b := new(strings.Builder)
	r.toStringBuilder(b)
	return b.String()
}

func (r *Expr) toStringBuilder(b *strings.Builder) {
	switch r.kind {
	case EXPR_EMPTY:
	case EXPR_EPSILON:
		b.WriteString("(" + symbolString(Epsilon) + ")")
	case EXPR_SYMBOL:
		b.WriteString("(" + symbolString(r.c) + ")")
	case EXPR_CONCATENATION, EXPR_UNION:
		op := "."
		if r.kind == EXPR_UNION {
			op = "+"
		}
		b.WriteByte('(')
		r.exp1.toStringBuilder(b)
		b.WriteString(op)
		r.exp2.toStringBuilder(b)
		b.WriteByte(')')
	case EXPR_STAR:
		b.WriteByte('(')
		r.exp1.toStringBuilder(b)
		b.WriteString(")*")
	}
}

type exprOption struct {
	reduce bool
}

type ExprOption func(*exprOption)

// WithIntermediateReduction Reduces every union, concatenation and repetition as soon
// as it is built, which keeps intermediate automata small.
func WithIntermediateReduction(reduce bool) ExprOption {
	return func(o *exprOption) {
		o.reduce = reduce
	}
}

// ToAutomaton Builds the automaton of this expression with the combinators of this
// package, starting from the elementary automata of f.
func (r *Expr) ToAutomaton(f *Automata, options ...ExprOption) (*Automaton, error) {
	opts := &exprOption{}
	for _, fn := range options {
		fn(opts)
	}
	return r.toAutomatonInternal(f, opts)
}

func (r *Expr) toAutomatonInternal(f *Automata, opts *exprOption) (*Automaton, error) {
	var a *Automaton
	var err error
	switch r.kind {
	case EXPR_EMPTY:
		return f.Make(EmptyLanguage)
	case EXPR_EPSILON:
		return f.Make(Epsilon)
	case EXPR_SYMBOL:
		return f.Make(r.c)
	case EXPR_UNION, EXPR_CONCATENATION:
		list := make([]*Automaton, 0, 2)
		if err := r.findLeaves(r, r.kind, &list, f, opts); err != nil {
			return nil, err
		}
		combine := Union
		if r.kind == EXPR_CONCATENATION {
			combine = Concatenate
		}
		a = list[0]
		for _, next := range list[1:] {
			if a, err = combine(a, next); err != nil {
				return nil, err
			}
		}
	case EXPR_STAR:
		a1, err := r.exp1.toAutomatonInternal(f, opts)
		if err != nil {
			return nil, err
		}
		a = Star(a1)
	default:
		return nil, fmt.Errorf("%w: unknown expression kind %s", ErrInvalidArgument, r.kind)
	}

	if opts.reduce {
		a = Reduce(a)
	}
	return a, nil
}

// findLeaves Collects, left to right, the automata of the operands of a chain of
// nodes of the same kind.
func (r *Expr) findLeaves(exp *Expr, kind Kind, list *[]*Automaton, f *Automata, opts *exprOption) error {
	if exp.kind == kind {
		if err := r.findLeaves(exp.exp1, kind, list, f, opts); err != nil {
			return err
		}
		return r.findLeaves(exp.exp2, kind, list, f, opts)
	}

	a, err := exp.toAutomatonInternal(f, opts)
	if err != nil {
		return err
	}
	*list = append(*list, a)
	return nil
}

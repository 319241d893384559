package fsa

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT Writes a Graphviz description of a to w. Accept states are drawn as double
// circles; every destination of a transition gets its own edge.
func WriteDOT(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	if a.Name() != "" {
		fmt.Fprintf(bw, "    label=%q;\n", a.Name())
	}

	for s := 0; s < a.GetNumStates(); s++ {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape)
	}
	for s := 0; s < a.GetNumStates(); s++ {
		for _, symbol := range a.Symbols(s) {
			for _, d := range a.Destinations(s, symbol) {
				fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", s, d, symbolString(symbol))
			}
		}
	}
	if a.GetNumStates() > 0 {
		fmt.Fprintln(bw, "    _start [shape=point]; _start -> q0;")
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

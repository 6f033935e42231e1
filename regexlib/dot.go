package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz representation of the automaton to w.
func ExportDOT(w io.Writer, n *NFA) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range n.States() {
		shape := "circle"
		if n.Accepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s, shape)
	}
	for _, e := range n.Edges() {
		fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", e.From, e.To, string(e.Symbol))
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", start)

	fmt.Fprintln(w, "}")
}

package regexlib

import "errors"

/* ----------- Compilation ----------- */

// Compile builds the automaton for an infix pattern: shunting-yard parse,
// Glushkov sets, assembly. Malformed patterns return an error and no
// automaton.
func Compile(pattern string) (*NFA, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	root, err := newParser(pattern).parse()
	if err != nil {
		return nil, err
	}
	return CompileTree(root), nil
}

// CompileTree builds the automaton from an already constructed expression
// tree, for callers that assemble trees with a Builder instead of parsing
// text. The tree must carry unique positions, which one Builder guarantees.
func CompileTree(root *Node) *NFA {
	nfa := setsToNFA(prefix(root), suffix(root), factors(root))
	// A nullable pattern accepts the empty string, which the position sets
	// alone cannot express: the start state itself must accept.
	if matchesEmpty(root) {
		nfa.accept[start] = struct{}{}
	}
	return nfa
}

func MustCompile(pattern string) *NFA {
	nfa, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return nfa
}

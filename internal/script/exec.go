package script

import (
	"fmt"
	"io"

	"gregex/regexlib"
)

// Exec compiles every block's pattern once, runs all its checks against the
// automaton and writes one line per check to w. It returns an error if a
// pattern does not compile or any expectation fails.
func (s *Script) Exec(w io.Writer) error {
	failures := 0
	for _, b := range s.Blocks {
		nfa, err := regexlib.Compile(b.Pattern)
		if err != nil {
			return fmt.Errorf("compile %q: %w", b.Pattern, err)
		}
		for _, c := range b.Checks {
			got := nfa.Simulate(c.Input)
			want := c.Want == "accept"
			verdict := "ok"
			if got != want {
				verdict = "FAIL"
				failures++
			}
			fmt.Fprintf(w, "%-4s %q on %q: want %s, got %s\n",
				verdict, b.Pattern, c.Input, c.Want, verdictWord(got))
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	return nil
}

func verdictWord(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}

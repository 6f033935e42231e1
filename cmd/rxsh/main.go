package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"

	"gregex/regexlib"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: rxsh <pattern>")
		os.Exit(2)
	}

	nfa, err := regexlib.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	fmt.Printf("pattern %q compiled, %d states\n", os.Args[1], len(nfa.States()))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"From", "Symbol", "To"})
	for _, e := range nfa.Edges() {
		to := fmt.Sprintf("q%d", e.To)
		if nfa.Accepting(e.To) {
			to += " (accept)"
		}
		table.Append([]string{fmt.Sprintf("q%d", e.From), string(e.Symbol), to})
	}
	table.Render()

	for {
		prompt := promptui.Prompt{
			Label: "input to simulate (or 'exit')",
		}
		in, err := prompt.Run()
		if err != nil {
			return
		}
		if in == "exit" {
			break
		}
		if nfa.Simulate(in) {
			fmt.Println(promptui.Styler(promptui.FGGreen)("accepted"))
		} else {
			fmt.Println(promptui.Styler(promptui.FGRed)("rejected"))
		}
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"refa/internal/regex"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>...",
	Short: "Compile a pattern and test inputs against it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(pattern string, inputs []string) error {
	nfa, err := regex.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compile %q: %w", pattern, err)
	}
	logger.Debug("pattern compiled", "pattern", pattern, "states", nfa.Graph().Len())
	for _, in := range inputs {
		verdict := "reject"
		if nfa.Accepts(in) {
			verdict = "accept"
		}
		fmt.Printf("%s\t%q\n", verdict, in)
	}
	return nil
}

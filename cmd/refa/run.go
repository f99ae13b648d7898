package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"refa/internal/automaton"
	"refa/internal/describe"
)

var runCmd = &cobra.Command{
	Use:   "run <description file> <input>...",
	Short: "Load an automaton description and test inputs against it",
	Long: `Loads a .json, .yaml or .fa automaton description, builds the automaton
(deterministic table-walker when the description says so, closure-based NFA
otherwise) and reports accept/reject for each input.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := describe.Load(args[0])
		if err != nil {
			return err
		}
		acc, err := buildAcceptor(desc)
		if err != nil {
			return err
		}
		logger.Debug("automaton loaded", "file", args[0], "states", len(desc.States))
		for _, in := range args[1:] {
			verdict := "reject"
			if acc.Accepts(in) {
				verdict = "accept"
			}
			fmt.Printf("%s\t%q\n", verdict, in)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func buildAcceptor(desc *describe.Description) (automaton.Acceptor, error) {
	if desc.Deterministic {
		return desc.DFA()
	}
	return desc.NFA()
}

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"refa/internal/automaton"
	"refa/internal/describe"
	"refa/internal/regex"
)

var dotFile string

var dotCmd = &cobra.Command{
	Use:   "dot [<pattern>]",
	Short: "Print a Graphviz rendering of an automaton",
	Long: `Renders the NFA compiled from a pattern, or the automaton loaded from a
description file when --file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDot,
}

func init() {
	dotCmd.Flags().StringVarP(&dotFile, "file", "f", "", "automaton description file (.json, .yaml, .fa)")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) error {
	var acc automaton.Acceptor
	switch {
	case dotFile != "":
		desc, err := describe.Load(dotFile)
		if err != nil {
			return err
		}
		acc, err = buildAcceptor(desc)
		if err != nil {
			return err
		}
	case len(args) == 1:
		nfa, err := regex.Compile(args[0])
		if err != nil {
			return err
		}
		acc = nfa
	default:
		return errors.New("either a pattern or --file is required")
	}
	automaton.ExportDOT(os.Stdout, acc)
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"refa/internal/logging"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "refa",
	Short: "refa compiles regular expressions into finite automata",
	Long: `refa converts an infix regular expression to postfix notation, builds a
Thompson NFA and matches input strings against it. Automata can also be
loaded from JSON, YAML or .fa description files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger = logging.New(slog.LevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

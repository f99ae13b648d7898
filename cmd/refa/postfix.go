package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"refa/internal/regex"
)

var postfixCmd = &cobra.Command{
	Use:   "postfix <pattern>",
	Short: "Print the normalized and postfix forms of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized := regex.Normalize(args[0])
		postfix, err := regex.ToPostfix(normalized)
		if err != nil {
			return err
		}
		fmt.Printf("normalized: %s\n", normalized)
		fmt.Printf("postfix:    %s\n", postfix)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postfixCmd)
}

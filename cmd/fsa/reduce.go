package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <file>",
		Short: "Print the canonical minimal DFA of an expression",
		Long:  `Removes epsilon transitions, determinizes, completes and minimizes the automaton of the expression, then prints it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger(cmd)
			if err != nil {
				return err
			}
			a, err := loadAutomaton(cmd, logger, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reduce(logger, a))
			return nil
		},
	}
}

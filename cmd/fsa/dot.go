package main

import (
	"github.com/geange/fsa"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Export an automaton as a Graphviz graph",
		Long:  `Prints the minimal DFA of the expression in DOT format, or the automaton as built by the combinators with --raw.`,
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
			if raw, _ := cmd.Flags().GetBool("raw"); !raw {
				a = reduce(logger, a)
			}
			return fsa.WriteDOT(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().Bool("raw", false, "Export the unreduced automaton")
	return cmd
}

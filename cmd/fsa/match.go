package main

import (
	"fmt"

	"github.com/geange/fsa"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <file> <input>...",
		Short: "Test inputs against an expression",
		Long:  `Compiles the minimal DFA of the expression and prints "accept" or "reject" for every input.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger(cmd)
			if err != nil {
				return err
			}
			a, err := loadAutomaton(cmd, logger, args[0])
			if err != nil {
				return err
			}
			r, err := fsa.NewRunAutomaton(reduce(logger, a))
			if err != nil {
				return err
			}
			for _, input := range args[1:] {
				verdict := "reject"
				if r.Run(input) {
					verdict = "accept"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", verdict, input)
			}
			return nil
		},
	}
}

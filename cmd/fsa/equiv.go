package main

import (
	"errors"
	"fmt"

	"github.com/geange/fsa"
	"github.com/spf13/cobra"
)

var errNotEquivalent = errors.New("languages differ")

func newEquivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <file> <file>",
		Short: "Check whether two expressions describe the same language",
		Long:  `Reduces both automata to their minimal DFA and compares them. Exits with status 1 when the languages differ.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger(cmd)
			if err != nil {
				return err
			}
			left, err := loadAutomaton(cmd, logger, args[0])
			if err != nil {
				return err
			}
			right, err := loadAutomaton(cmd, logger, args[1])
			if err != nil {
				return err
			}

			if !fsa.Equivalent(left, right) {
				fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
				logger.Info("Not equivalent", "left", left.Name(), "right", right.Name())
				cmd.SilenceErrors = true
				return errNotEquivalent
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
			return nil
		},
	}
}

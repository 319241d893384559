package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/exprfile"
	"github.com/geange/fsa/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsa",
		Short: "fsa builds, reduces and compares finite automata",
		Long: `fsa assembles finite automata from expression documents (YAML operator trees),
reduces them to their canonical minimal DFA and checks two of them for language equivalence.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().String("dir", ".", "Directory relative expression files are read from")
	cmd.PersistentFlags().String("log-level", "off", "Log level on stderr: off, debug, info, warn, error")

	cmd.AddCommand(newReduceCmd(), newEquivCmd(), newDotCmd(), newMatchCmd())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// createLogger configures the application logger from the --log-level flag.
func createLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, ok, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return logging.NewNop(), nil
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}

// loadAutomaton reads the expression document at path (relative to --dir) and builds
// its automaton.
func loadAutomaton(cmd *cobra.Command, logger *slog.Logger, path string) (*fsa.Automaton, error) {
	if !filepath.IsAbs(path) {
		dir, _ := cmd.Flags().GetString("dir")
		path = filepath.Join(dir, path)
	}

	doc, err := exprfile.Load(path)
	if err != nil {
		logger.Error("Load failed", "path", path, "error", err)
		return nil, err
	}
	a, err := doc.Build()
	if err != nil {
		logger.Error("Build failed", "path", path, "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Automaton built", "path", path, "name", a.Name(), "states", a.GetNumStates())
	return a, nil
}

func reduce(logger *slog.Logger, a *fsa.Automaton) *fsa.Automaton {
	r := fsa.Reduce(a)
	logger.Debug("Automaton reduced", "name", a.Name(), "states", a.GetNumStates(), "minimal_states", r.GetNumStates())
	return r
}

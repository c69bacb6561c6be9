package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skyprep",
	Short: "Adaptive trainer for the three-part aviation theory exam",
	Long: "Skyprep is a spaced-repetition study scheduler and mock-exam trainer " +
		"for the three-leg aviation theory exam.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKYPREP_DB env var)")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKYPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// legFromFlag maps a --leg value (1-3 or a leg id) to a Leg.
func legFromFlag(v string) (exam.Leg, error) {
	switch v {
	case "1", string(exam.LegTechnicalLegal):
		return exam.LegTechnicalLegal, nil
	case "2", string(exam.LegHumanEnvironment):
		return exam.LegHumanEnvironment, nil
	case "3", string(exam.LegPlanningNavigation):
		return exam.LegPlanningNavigation, nil
	}
	return "", fmt.Errorf("unknown leg %q (use 1, 2, or 3)", v)
}

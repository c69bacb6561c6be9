package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all learner progress",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("this wipes all cards and history; rerun with --yes to confirm")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ResetProgress(cmd.Context()); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}

	fmt.Println("Progress reset. Questions and categories are untouched.")
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/bank"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Import a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := bank.ImportFile(cmd.Context(), st, args[0])
	if err != nil {
		return fmt.Errorf("import bank: %w", err)
	}

	fmt.Printf("Imported %d categories and %d questions", stats.Categories, stats.Questions)
	if stats.AssignedID > 0 {
		fmt.Printf(" (%d assigned new ids)", stats.AssignedID)
	}
	fmt.Println(".")
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List cards due for review",
	RunE:  runDue,
}

func init() {
	dueCmd.Flags().Int("limit", 0, "Maximum cards to list (0 = all)")
}

func runDue(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cards, err := st.CardRepo().Due(cmd.Context(), time.Now(), limit)
	if err != nil {
		return fmt.Errorf("query due cards: %w", err)
	}

	if len(cards) == 0 {
		fmt.Println("Nothing due. All caught up.")
		return nil
	}

	fmt.Printf("%d card(s) due:\n", len(cards))
	for _, card := range cards {
		fmt.Printf("  %-40s box %d  %-8s due %s\n",
			card.QuestionID, card.Box, srs.CardMaturity(card), card.NextReview.Format("2006-01-02"))
	}
	return nil
}

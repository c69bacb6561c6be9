package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic accuracy and card maturity",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	categories := st.CategoryRepo()

	for _, leg := range exam.Legs() {
		bp := exam.BlueprintFor(leg)
		fmt.Printf("\n%s: %s\n", bp.Title, bp.Subtitle)

		for _, quota := range bp.Quotas {
			subs, err := categories.Subcategories(ctx, quota.ParentID)
			if err != nil {
				return fmt.Errorf("subcategories of %s: %w", quota.ParentID, err)
			}
			for _, sub := range subs {
				stats, err := categories.CategoryStats(ctx, sub.ID)
				if err != nil {
					fmt.Fprintln(os.Stderr, "warning: stats for", sub.ID, "unavailable:", err)
					continue
				}
				if stats.Answered == 0 {
					fmt.Printf("  %-32s no answers yet\n", stats.Name)
					continue
				}
				pct := float64(stats.Correct) / float64(stats.Answered) * 100
				fmt.Printf("  %-32s %3d answered  %5.1f%%\n", stats.Name, stats.Answered, pct)
			}
		}
	}

	cards, err := st.CardRepo().All(ctx)
	if err != nil {
		return fmt.Errorf("query cards: %w", err)
	}

	counts := make(map[srs.Maturity]int)
	for _, card := range cards {
		counts[srs.CardMaturity(card)]++
	}

	fmt.Printf("\nCards: %d tracked (%d new, %d learning, %d review, %d mastered)\n",
		len(cards),
		counts[srs.MaturityNew], counts[srs.MaturityLearning],
		counts[srs.MaturityReview], counts[srs.MaturityMastered])
	return nil
}

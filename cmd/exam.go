package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/randx"
	"github.com/tkoehler/skyprep/internal/store"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take a timed mock exam for one leg",
	RunE:  runExam,
}

func init() {
	examCmd.Flags().String("leg", "1", "Exam leg (1-3)")
}

func runExam(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	legFlag, _ := cmd.Flags().GetString("leg")
	leg, err := legFromFlag(legFlag)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	categories := st.CategoryRepo()
	generator := exam.NewGenerator(categories, randx.New())

	questions, err := generator.Generate(ctx, leg)
	if err != nil {
		return fmt.Errorf("generate exam: %w", err)
	}
	if len(questions) == 0 {
		fmt.Println("No questions available for this leg. Import a question bank first.")
		return nil
	}

	bp := exam.BlueprintFor(leg)
	fmt.Printf("%s: %s\n", bp.Title, bp.Subtitle)
	fmt.Printf("%d questions, time limit %d minutes.\n", len(questions), bp.TimeLimitMinutes())

	answers := make(map[string]string, len(questions))
	reader := bufio.NewReader(os.Stdin)
	for i, q := range questions {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(questions), q.Text)
		for j, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, choice)
		}
		answers[q.ID] = q.Choices[readChoice(reader, len(q.Choices))]
	}

	score := exam.NewScorer(categories).ScoreExam(ctx, questions, answers)
	printScore(score)

	err = st.EventRepo().AppendExam(ctx, store.ExamEventData{
		Leg:        string(leg),
		Total:      score.TotalQuestions,
		Correct:    score.CorrectAnswers,
		Percentage: score.Percentage,
		Passed:     score.Passed,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to record exam:", err)
	}
	return nil
}

func printScore(score exam.Score) {
	fmt.Printf("\nResult: %d/%d (%.1f%%) ", score.CorrectAnswers, score.TotalQuestions, score.Percentage)
	if score.Passed {
		fmt.Println("PASSED")
	} else {
		fmt.Println("FAILED")
	}

	for _, cr := range score.Categories {
		fmt.Printf("  %-32s %d/%d\n", cr.CategoryName, cr.Correct, cr.Total)
	}
}

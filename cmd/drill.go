package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/session"
	"github.com/tkoehler/skyprep/internal/srs"
	"github.com/tkoehler/skyprep/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run an adaptive practice session",
	RunE:  runDrill,
}

func init() {
	drillCmd.Flags().String("leg", "1", "Exam leg to practice (1-3)")
	drillCmd.Flags().String("mode", "daily", "Session mode: quick, daily, weak, pre-exam, subject, leg")
	drillCmd.Flags().String("subject", "", "Parent category id (subject mode only)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	legFlag, _ := cmd.Flags().GetString("leg")
	leg, err := legFromFlag(legFlag)
	if err != nil {
		return err
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	subject, _ := cmd.Flags().GetString("subject")
	sessionType, err := sessionTypeFromFlags(modeFlag, subject, leg)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	categories := st.CategoryRepo()
	composer := session.NewComposer(categories)

	ids, err := composer.Generate(ctx, sessionType, leg)
	if err != nil {
		return fmt.Errorf("compose session: %w", err)
	}
	if len(ids) == 0 {
		fmt.Println("No questions available for this session.")
		return nil
	}

	questions, err := categories.QuestionsByID(ctx, ids)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	correct := 0
	reader := bufio.NewReader(os.Stdin)
	for i, q := range questions {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(questions), q.Text)
		for j, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, choice)
		}

		started := time.Now()
		answer := readChoice(reader, len(q.Choices))
		elapsed := time.Since(started)

		wasCorrect := q.Choices[answer] == q.CorrectAnswer
		if wasCorrect {
			correct++
			fmt.Println("Correct.")
		} else {
			fmt.Printf("Incorrect. The answer is: %s\n", q.CorrectAnswer)
		}
		if q.Explanation != "" {
			fmt.Println(q.Explanation)
		}

		if err := recordAnswer(ctx, st, q, wasCorrect, string(sessionType.Kind), elapsed); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to record answer:", err)
		}
	}

	fmt.Printf("\nSession complete: %d/%d correct (%.0f%%)\n",
		correct, len(questions), float64(correct)/float64(len(questions))*100)
	return nil
}

// recordAnswer runs the card through the scheduler, persists it, and
// appends the answer to the interaction log.
func recordAnswer(ctx context.Context, st *store.Store, q store.Question, correct bool, mode string, elapsed time.Duration) error {
	cards := st.CardRepo()

	card, err := cards.GetOrCreate(ctx, q.ID)
	if err != nil {
		return err
	}
	card = srs.Process(card, correct, time.Now())
	if err := cards.Update(ctx, card); err != nil {
		return err
	}

	return st.EventRepo().AppendAnswer(ctx, store.AnswerEventData{
		QuestionID: q.ID,
		CategoryID: q.CategoryID,
		Mode:       mode,
		Correct:    correct,
		TimeMs:     int(elapsed.Milliseconds()),
	})
}

// readChoice prompts until the learner enters a choice number in range.
func readChoice(reader *bufio.Reader, choices int) int {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= choices {
			return n - 1
		}
		fmt.Printf("Enter a number between 1 and %d.\n", choices)
	}
}

func sessionTypeFromFlags(mode, subject string, leg exam.Leg) (session.Type, error) {
	switch mode {
	case "quick":
		return session.QuickReview(), nil
	case "daily":
		return session.DailyPractice(), nil
	case "weak":
		return session.WeakAreaFocus(), nil
	case "pre-exam":
		return session.PreExamDrill(), nil
	case "subject":
		if subject == "" {
			return session.Type{}, fmt.Errorf("subject mode requires --subject")
		}
		return session.SubjectFocus(subject), nil
	case "leg":
		return session.LegFocus(leg), nil
	}
	return session.Type{}, fmt.Errorf("unknown mode %q", mode)
}

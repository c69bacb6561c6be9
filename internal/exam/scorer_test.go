package exam

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/tkoehler/skyprep/internal/store"
)

func scorerQuestions(categoryID string, n int) []store.Question {
	qs := make([]store.Question, n)
	for i := range qs {
		qs[i] = store.Question{
			ID:            categoryID + "-q" + string(rune('a'+i)),
			CategoryID:    categoryID,
			CorrectAnswer: "right",
		}
	}
	return qs
}

func TestScoreExam_AllCorrect(t *testing.T) {
	repo := newFakeRepo()
	repo.stats["met"] = store.CategoryStats{CategoryID: "met", Name: "Meteorology"}
	questions := scorerQuestions("met", 4)

	answers := make(map[string]string)
	for _, q := range questions {
		answers[q.ID] = "right"
	}

	score := NewScorer(repo).ScoreExam(context.Background(), questions, answers)

	if score.TotalQuestions != 4 || score.CorrectAnswers != 4 {
		t.Errorf("total/correct = %d/%d, want 4/4", score.TotalQuestions, score.CorrectAnswers)
	}
	if score.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", score.Percentage)
	}
	if !score.Passed {
		t.Error("expected pass")
	}
	if len(score.Categories) != 1 || score.Categories[0].CategoryName != "Meteorology" {
		t.Errorf("unexpected breakdown: %+v", score.Categories)
	}
}

func TestScoreExam_MissingAnswersAreIncorrect(t *testing.T) {
	repo := newFakeRepo()
	repo.stats["law"] = store.CategoryStats{CategoryID: "law", Name: "Air Law"}
	questions := scorerQuestions("law", 10)

	score := NewScorer(repo).ScoreExam(context.Background(), questions, map[string]string{})

	if score.CorrectAnswers != 0 {
		t.Errorf("CorrectAnswers = %d, want 0", score.CorrectAnswers)
	}
	if score.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0", score.Percentage)
	}
	if score.Passed {
		t.Error("expected fail")
	}
	for _, cr := range score.Categories {
		if cr.Correct != 0 {
			t.Errorf("category %s shows %d correct, want 0", cr.CategoryID, cr.Correct)
		}
	}
}

func TestScoreExam_PassThresholdIsInclusive(t *testing.T) {
	repo := newFakeRepo()
	repo.stats["nav"] = store.CategoryStats{CategoryID: "nav", Name: "Navigation"}

	// Exactly 75%: 3 of 4.
	questions := scorerQuestions("nav", 4)
	answers := map[string]string{
		questions[0].ID: "right",
		questions[1].ID: "right",
		questions[2].ID: "right",
		questions[3].ID: "wrong",
	}
	score := NewScorer(repo).ScoreExam(context.Background(), questions, answers)
	if !score.Passed {
		t.Errorf("75%% exactly should pass, got Passed=false (%.4f)", score.Percentage)
	}

	// Just below threshold: 74 of 99 is 74.74%.
	questions = scorerQuestions("nav", 99)
	answers = make(map[string]string)
	for i := 0; i < 74; i++ {
		answers[questions[i].ID] = "right"
	}
	score = NewScorer(repo).ScoreExam(context.Background(), questions, answers)
	if score.Passed {
		t.Errorf("%.4f%% should fail", score.Percentage)
	}
	if math.Abs(score.Percentage-74.7474747474) > 0.01 {
		t.Errorf("Percentage = %v", score.Percentage)
	}
}

func TestScoreExam_EmptyExam(t *testing.T) {
	repo := newFakeRepo()
	score := NewScorer(repo).ScoreExam(context.Background(), nil, nil)

	if score.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0", score.Percentage)
	}
	if score.Passed {
		t.Error("empty exam must not pass")
	}
	if len(score.Categories) != 0 {
		t.Errorf("expected empty breakdown, got %+v", score.Categories)
	}
}

func TestScoreExam_BreakdownSortedByName(t *testing.T) {
	repo := newFakeRepo()
	repo.stats["a-cat"] = store.CategoryStats{CategoryID: "a-cat", Name: "Zulu Topics"}
	repo.stats["b-cat"] = store.CategoryStats{CategoryID: "b-cat", Name: "Alpha Topics"}
	repo.stats["c-cat"] = store.CategoryStats{CategoryID: "c-cat", Name: "Mike Topics"}

	var questions []store.Question
	for _, cat := range []string{"a-cat", "b-cat", "c-cat"} {
		questions = append(questions, scorerQuestions(cat, 2)...)
	}

	score := NewScorer(repo).ScoreExam(context.Background(), questions, nil)

	names := make([]string, len(score.Categories))
	for i, cr := range score.Categories {
		names[i] = cr.CategoryName
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("breakdown not sorted by name: %v", names)
	}
}

func TestScoreExam_NameLookupFailureFallsBackToUnknown(t *testing.T) {
	repo := newFakeRepo()
	repo.statsErr = errors.New("db gone")
	questions := scorerQuestions("ghost", 3)

	score := NewScorer(repo).ScoreExam(context.Background(), questions, nil)

	if len(score.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(score.Categories))
	}
	if score.Categories[0].CategoryName != "Unknown" {
		t.Errorf("CategoryName = %q, want Unknown", score.Categories[0].CategoryName)
	}
	if score.TotalQuestions != 3 {
		t.Errorf("scoring must complete despite lookup failure, total = %d", score.TotalQuestions)
	}
}

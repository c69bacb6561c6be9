package exam

import (
	"context"
	"sort"

	"github.com/tkoehler/skyprep/internal/store"
)

// PassThreshold is the minimum percentage required to pass a leg.
const PassThreshold = 75.0

// unknownCategoryName is used when a category's display name cannot be
// resolved during scoring.
const unknownCategoryName = "Unknown"

// CategoryResult is the per-category portion of a mock exam score.
type CategoryResult struct {
	CategoryID   string
	CategoryName string
	Total        int
	Correct      int
}

// Score is the graded result of a completed mock exam.
type Score struct {
	TotalQuestions int
	CorrectAnswers int
	Percentage     float64
	Passed         bool
	Categories     []CategoryResult
}

// Scorer grades completed mock exams.
type Scorer struct {
	categories store.CategoryRepo
}

// NewScorer creates a scorer that resolves category names via the given
// store.
func NewScorer(categories store.CategoryRepo) *Scorer {
	return &Scorer{categories: categories}
}

// ScoreExam grades the questions against the learner's answers. An
// absent answer is simply incorrect; a failed category name lookup
// degrades to "Unknown". Scoring always completes once questions and
// answers are in hand. The category breakdown is sorted by name.
func (s *Scorer) ScoreExam(ctx context.Context, questions []store.Question, answers map[string]string) Score {
	correct := 0
	tally := make(map[string]*CategoryResult)

	for _, q := range questions {
		cr, ok := tally[q.CategoryID]
		if !ok {
			cr = &CategoryResult{
				CategoryID:   q.CategoryID,
				CategoryName: s.categoryName(ctx, q.CategoryID),
			}
			tally[q.CategoryID] = cr
		}
		cr.Total++

		if answers[q.ID] == q.CorrectAnswer {
			correct++
			cr.Correct++
		}
	}

	percentage := 0.0
	if len(questions) > 0 {
		percentage = float64(correct) / float64(len(questions)) * 100
	}

	results := make([]CategoryResult, 0, len(tally))
	for _, cr := range tally {
		results = append(results, *cr)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CategoryName < results[j].CategoryName
	})

	return Score{
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		Percentage:     percentage,
		Passed:         percentage >= PassThreshold,
		Categories:     results,
	}
}

func (s *Scorer) categoryName(ctx context.Context, categoryID string) string {
	stats, err := s.categories.CategoryStats(ctx, categoryID)
	if err != nil || stats.Name == "" {
		return unknownCategoryName
	}
	return stats.Name
}

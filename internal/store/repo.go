package store

import (
	"context"
	"time"

	"github.com/tkoehler/skyprep/internal/srs"
)

// Category is a node in the two-level category tree. Top-level (parent)
// categories have an empty ParentID; subcategories reference their parent.
type Category struct {
	ID       string
	Name     string
	ParentID string
}

// CategoryStats aggregates a category's question inventory and the
// learner's historical answer tallies for it.
type CategoryStats struct {
	CategoryID     string
	Name           string
	TotalQuestions int
	Answered       int
	Correct        int
}

// Question is a multiple-choice question. MockOnly questions are reserved
// for mock exams and excluded from practice sampling.
type Question struct {
	ID            string
	CategoryID    string
	Text          string
	Choices       []string
	CorrectAnswer string
	Explanation   string
	MockOnly      bool
}

// AnswerEventData captures one answered question for the interaction log.
type AnswerEventData struct {
	QuestionID string
	CategoryID string
	Mode       string
	Correct    bool
	TimeMs     int
}

// ExamEventData captures a completed mock exam result.
type ExamEventData struct {
	Leg        string
	Total      int
	Correct    int
	Percentage float64
	Passed     bool
}

// CategoryRepo provides category hierarchy lookups and random question
// sampling. Empty results are valid states, not errors.
type CategoryRepo interface {
	// Subcategories returns the direct children of a parent category.
	Subcategories(ctx context.Context, parentID string) ([]Category, error)

	// CategoryStats returns inventory and answer tallies for a category.
	CategoryStats(ctx context.Context, categoryID string) (CategoryStats, error)

	// RandomQuestions samples up to limit questions from a single
	// category. Mock-only questions are excluded unless allowMockOnly.
	RandomQuestions(ctx context.Context, categoryID string, limit int, allowMockOnly bool) ([]Question, error)

	// RandomQuestionsFromCategories samples up to limit questions from
	// the union of the given categories, excluding mock-only questions.
	RandomQuestionsFromCategories(ctx context.Context, categoryIDs []string, limit int) ([]Question, error)

	// QuestionsByID resolves questions by id, preserving input order.
	QuestionsByID(ctx context.Context, ids []string) ([]Question, error)
}

// CardRepo persists per-question scheduling state.
type CardRepo interface {
	// GetOrCreate returns the card for a question, creating the default
	// state if the question has never been answered.
	GetOrCreate(ctx context.Context, questionID string) (srs.Card, error)

	// Update persists a card after scheduling.
	Update(ctx context.Context, card srs.Card) error

	// Due returns cards with NextReview <= now, most overdue first.
	// limit <= 0 means no limit.
	Due(ctx context.Context, now time.Time, limit int) ([]srs.Card, error)

	// All returns every tracked card.
	All(ctx context.Context) ([]srs.Card, error)
}

// EventRepo provides append access to the interaction log.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendExam(ctx context.Context, data ExamEventData) error
}

package store

import (
	"context"
	"fmt"

	"github.com/tkoehler/skyprep/ent"
	"github.com/tkoehler/skyprep/ent/question"
)

func (r *categoryRepo) RandomQuestions(ctx context.Context, categoryID string, limit int, allowMockOnly bool) ([]Question, error) {
	if limit <= 0 {
		return nil, nil
	}

	q := r.client.Question.Query().
		Where(question.CategoryID(categoryID))
	if !allowMockOnly {
		q = q.Where(question.MockOnly(false))
	}

	rows, err := q.Order(randomOrder).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample questions of %s: %w", categoryID, err)
	}
	return questionsFromRows(rows), nil
}

func (r *categoryRepo) RandomQuestionsFromCategories(ctx context.Context, categoryIDs []string, limit int) ([]Question, error) {
	if limit <= 0 || len(categoryIDs) == 0 {
		return nil, nil
	}

	rows, err := r.client.Question.Query().
		Where(question.CategoryIDIn(categoryIDs...), question.MockOnly(false)).
		Order(randomOrder).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample questions across categories: %w", err)
	}
	return questionsFromRows(rows), nil
}

func (r *categoryRepo) QuestionsByID(ctx context.Context, ids []string) ([]Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.client.Question.Query().
		Where(question.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by id: %w", err)
	}

	byID := make(map[string]Question, len(rows))
	for _, row := range rows {
		byID[row.ID] = questionFromRow(row)
	}

	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// SaveQuestion upserts a question by id. Used by the bank importer.
func (s *Store) SaveQuestion(ctx context.Context, q Question) error {
	err := s.client.Question.Create().
		SetID(q.ID).
		SetCategoryID(q.CategoryID).
		SetText(q.Text).
		SetChoices(q.Choices).
		SetCorrectAnswer(q.CorrectAnswer).
		SetExplanation(q.Explanation).
		SetMockOnly(q.MockOnly).
		OnConflictColumns(question.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}

func questionFromRow(row *ent.Question) Question {
	return Question{
		ID:            row.ID,
		CategoryID:    row.CategoryID,
		Text:          row.Text,
		Choices:       row.Choices,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		MockOnly:      row.MockOnly,
	}
}

func questionsFromRows(rows []*ent.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = questionFromRow(row)
	}
	return out
}

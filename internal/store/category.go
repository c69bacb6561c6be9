package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/tkoehler/skyprep/ent"
	"github.com/tkoehler/skyprep/ent/answerevent"
	"github.com/tkoehler/skyprep/ent/category"
	"github.com/tkoehler/skyprep/ent/question"
)

// categoryRepo implements CategoryRepo using the ent client.
type categoryRepo struct {
	client *ent.Client
}

func (r *categoryRepo) Subcategories(ctx context.Context, parentID string) ([]Category, error) {
	rows, err := r.client.Category.Query().
		Where(category.ParentID(parentID)).
		Order(ent.Asc(category.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subcategories of %s: %w", parentID, err)
	}

	cats := make([]Category, len(rows))
	for i, row := range rows {
		cats[i] = Category{ID: row.ID, Name: row.Name, ParentID: row.ParentID}
	}
	return cats, nil
}

func (r *categoryRepo) CategoryStats(ctx context.Context, categoryID string) (CategoryStats, error) {
	row, err := r.client.Category.Get(ctx, categoryID)
	if err != nil {
		return CategoryStats{}, fmt.Errorf("get category %s: %w", categoryID, err)
	}

	total, err := r.client.Question.Query().
		Where(question.CategoryID(categoryID)).
		Count(ctx)
	if err != nil {
		return CategoryStats{}, fmt.Errorf("count questions of %s: %w", categoryID, err)
	}

	answered, err := r.client.AnswerEvent.Query().
		Where(answerevent.CategoryID(categoryID)).
		Count(ctx)
	if err != nil {
		return CategoryStats{}, fmt.Errorf("count answers of %s: %w", categoryID, err)
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.CategoryID(categoryID), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return CategoryStats{}, fmt.Errorf("count correct answers of %s: %w", categoryID, err)
	}

	return CategoryStats{
		CategoryID:     row.ID,
		Name:           row.Name,
		TotalQuestions: total,
		Answered:       answered,
		Correct:        correct,
	}, nil
}

// SaveCategory upserts a category by id. Used by the bank importer.
func (s *Store) SaveCategory(ctx context.Context, c Category) error {
	err := s.client.Category.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetParentID(c.ParentID).
		OnConflictColumns(category.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save category %s: %w", c.ID, err)
	}
	return nil
}

// randomOrder samples rows in random order inside SQLite. ent has no
// built-in random ordering, so this drops to a raw order expression.
func randomOrder(s *entsql.Selector) {
	s.OrderExpr(entsql.Expr("RANDOM()"))
}

package bank

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/google/uuid"

	"github.com/tkoehler/skyprep/internal/store"
)

// Saver persists bank entries. *store.Store implements it.
type Saver interface {
	SaveCategory(ctx context.Context, c store.Category) error
	SaveQuestion(ctx context.Context, q store.Question) error
}

// Stats summarizes an import.
type Stats struct {
	Categories int
	Questions  int
	AssignedID int // questions that arrived without an id
}

// Import validates and loads a bank into the store. Categories import
// first so questions never reference a missing category; re-importing
// the same bank is idempotent (entries upsert by id).
func Import(ctx context.Context, saver Saver, raw []byte) (Stats, error) {
	b, err := Parse(raw)
	if err != nil {
		return Stats{}, err
	}

	declared := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		declared[c.ID] = true
	}
	for _, c := range b.Categories {
		if c.Parent != "" && !declared[c.Parent] {
			return Stats{}, fmt.Errorf("category %s references undeclared parent %s", c.ID, c.Parent)
		}
	}
	for _, q := range b.Questions {
		if !declared[q.Category] {
			return Stats{}, fmt.Errorf("question %q references undeclared category %s", q.Text, q.Category)
		}
		if !slices.Contains(q.Choices, q.Answer) {
			return Stats{}, fmt.Errorf("question %q: answer is not among its choices", q.Text)
		}
	}

	var stats Stats
	for _, c := range b.Categories {
		err := saver.SaveCategory(ctx, store.Category{
			ID:       c.ID,
			Name:     c.Name,
			ParentID: c.Parent,
		})
		if err != nil {
			return stats, fmt.Errorf("import category %s: %w", c.ID, err)
		}
		stats.Categories++
	}

	for _, q := range b.Questions {
		id := q.ID
		if id == "" {
			id = uuid.New().String()
			stats.AssignedID++
		}
		err := saver.SaveQuestion(ctx, store.Question{
			ID:            id,
			CategoryID:    q.Category,
			Text:          q.Text,
			Choices:       q.Choices,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
			MockOnly:      q.MockOnly,
		})
		if err != nil {
			return stats, fmt.Errorf("import question %s: %w", id, err)
		}
		stats.Questions++
	}

	return stats, nil
}

// ImportFile loads a bank from a file path.
func ImportFile(ctx context.Context, saver Saver, path string) (Stats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("read bank file: %w", err)
	}
	return Import(ctx, saver, raw)
}

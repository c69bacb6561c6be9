package exam

import (
	"context"
	"fmt"

	"github.com/tkoehler/skyprep/internal/randx"
	"github.com/tkoehler/skyprep/internal/store"
)

// Generator assembles full mock exams from a leg's blueprint.
type Generator struct {
	categories store.CategoryRepo
	rng        randx.Source
}

// NewGenerator creates a generator backed by the given category store.
func NewGenerator(categories store.CategoryRepo, rng randx.Source) *Generator {
	return &Generator{categories: categories, rng: rng}
}

// Generate builds a mock exam for the leg, walking the blueprint's quota
// table in order. Each quota draws its questions at random from the union
// of the parent's subcategories; a parent with no subcategories is
// sampled directly, with mock-only questions allowed. Thin inventory
// yields a short exam, not an error. The assembled list is shuffled once
// at the end so category ordering is not observable.
func (g *Generator) Generate(ctx context.Context, leg Leg) ([]store.Question, error) {
	bp := BlueprintFor(leg)

	var questions []store.Question
	for _, quota := range bp.Quotas {
		subs, err := g.categories.Subcategories(ctx, quota.ParentID)
		if err != nil {
			return nil, fmt.Errorf("subcategories of %s: %w", quota.ParentID, err)
		}

		var batch []store.Question
		if len(subs) == 0 {
			batch, err = g.categories.RandomQuestions(ctx, quota.ParentID, quota.Questions, true)
		} else {
			ids := make([]string, len(subs))
			for i, sub := range subs {
				ids[i] = sub.ID
			}
			batch, err = g.categories.RandomQuestionsFromCategories(ctx, ids, quota.Questions)
		}
		if err != nil {
			return nil, fmt.Errorf("sample questions for %s: %w", quota.ParentID, err)
		}

		questions = append(questions, batch...)
	}

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

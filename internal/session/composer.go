package session

import (
	"context"
	"fmt"

	"github.com/tkoehler/skyprep/internal/analysis"
	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/store"
)

// Composer selects question pools for practice sessions.
type Composer struct {
	categories store.CategoryRepo
}

// NewComposer creates a composer backed by the given category store.
func NewComposer(categories store.CategoryRepo) *Composer {
	return &Composer{categories: categories}
}

// Generate returns the question ids for a session of the given type,
// scoped to the leg (leg-focus sessions use their embedded leg instead).
// A scope that resolves to zero subcategories yields an empty pool, not
// an error; store failures are propagated unchanged.
func (c *Composer) Generate(ctx context.Context, t Type, leg exam.Leg) ([]string, error) {
	switch t.Kind {
	case KindQuickReview:
		return c.fromLeg(ctx, leg, quickReviewCount)
	case KindDailyPractice:
		return c.fromLeg(ctx, leg, dailyPracticeCount)
	case KindWeakAreaFocus:
		return c.fromWeakAreas(ctx, leg)
	case KindPreExamDrill:
		return c.fromLeg(ctx, leg, exam.BlueprintFor(leg).TotalQuestions())
	case KindSubjectFocus:
		return c.fromParent(ctx, t.ParentID, subjectFocusCount)
	case KindLegFocus:
		return c.fromLeg(ctx, t.Leg, legFocusCount)
	}
	return nil, fmt.Errorf("unknown session kind %q", t.Kind)
}

// fromLeg samples from the union of all subcategories under the leg's
// blueprint parents.
func (c *Composer) fromLeg(ctx context.Context, leg exam.Leg, count int) ([]string, error) {
	ids, err := c.legSubcategoryIDs(ctx, leg)
	if err != nil {
		return nil, err
	}
	return c.sample(ctx, ids, count)
}

// fromParent samples from one parent category's direct subcategories.
func (c *Composer) fromParent(ctx context.Context, parentID string, count int) ([]string, error) {
	subs, err := c.categories.Subcategories(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("subcategories of %s: %w", parentID, err)
	}
	ids := make([]string, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ID
	}
	return c.sample(ctx, ids, count)
}

// fromWeakAreas samples from the leg's weakest answered subcategories.
func (c *Composer) fromWeakAreas(ctx context.Context, leg exam.Leg) ([]string, error) {
	ids, err := c.legSubcategoryIDs(ctx, leg)
	if err != nil {
		return nil, err
	}

	accuracies := make([]analysis.CategoryAccuracy, 0, len(ids))
	for _, id := range ids {
		stats, err := c.categories.CategoryStats(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("stats for %s: %w", id, err)
		}
		accuracies = append(accuracies, analysis.CategoryAccuracy{
			CategoryID: stats.CategoryID,
			Name:       stats.Name,
			Answered:   stats.Answered,
			Correct:    stats.Correct,
		})
	}

	weakest := analysis.WeakestN(accuracies, weakAreaTopN)
	return c.sample(ctx, weakest, weakAreaCount)
}

func (c *Composer) legSubcategoryIDs(ctx context.Context, leg exam.Leg) ([]string, error) {
	var ids []string
	for _, quota := range exam.BlueprintFor(leg).Quotas {
		subs, err := c.categories.Subcategories(ctx, quota.ParentID)
		if err != nil {
			return nil, fmt.Errorf("subcategories of %s: %w", quota.ParentID, err)
		}
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
	}
	return ids, nil
}

func (c *Composer) sample(ctx context.Context, categoryIDs []string, count int) ([]string, error) {
	if len(categoryIDs) == 0 || count <= 0 {
		return nil, nil
	}
	questions, err := c.categories.RandomQuestionsFromCategories(ctx, categoryIDs, count)
	if err != nil {
		return nil, fmt.Errorf("sample questions: %w", err)
	}
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids, nil
}

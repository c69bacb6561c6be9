package exam

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tkoehler/skyprep/internal/randx"
	"github.com/tkoehler/skyprep/internal/store"
)

// fakeCategoryRepo is a deterministic in-memory category store for tests.
type fakeCategoryRepo struct {
	subs      map[string][]store.Category
	stats     map[string]store.CategoryStats
	questions map[string][]store.Question
	subsErr   error
	statsErr  error
}

func (f *fakeCategoryRepo) Subcategories(_ context.Context, parentID string) ([]store.Category, error) {
	if f.subsErr != nil {
		return nil, f.subsErr
	}
	return f.subs[parentID], nil
}

func (f *fakeCategoryRepo) CategoryStats(_ context.Context, categoryID string) (store.CategoryStats, error) {
	if f.statsErr != nil {
		return store.CategoryStats{}, f.statsErr
	}
	s, ok := f.stats[categoryID]
	if !ok {
		return store.CategoryStats{}, fmt.Errorf("category %s not found", categoryID)
	}
	return s, nil
}

func (f *fakeCategoryRepo) RandomQuestions(_ context.Context, categoryID string, limit int, allowMockOnly bool) ([]store.Question, error) {
	var out []store.Question
	for _, q := range f.questions[categoryID] {
		if q.MockOnly && !allowMockOnly {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) RandomQuestionsFromCategories(_ context.Context, categoryIDs []string, limit int) ([]store.Question, error) {
	var out []store.Question
	for _, id := range categoryIDs {
		for _, q := range f.questions[id] {
			if q.MockOnly {
				continue
			}
			out = append(out, q)
			if len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) QuestionsByID(_ context.Context, ids []string) ([]store.Question, error) {
	byID := make(map[string]store.Question)
	for _, qs := range f.questions {
		for _, q := range qs {
			byID[q.ID] = q
		}
	}
	var out []store.Question
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// seedQuestions fills every subcategory of every blueprint parent of the
// leg with n plain questions.
func seedQuestions(repo *fakeCategoryRepo, leg Leg, subsPerParent, questionsPerSub int) {
	bp := BlueprintFor(leg)
	for _, quota := range bp.Quotas {
		for s := 0; s < subsPerParent; s++ {
			subID := fmt.Sprintf("%s-sub%d", quota.ParentID, s)
			repo.subs[quota.ParentID] = append(repo.subs[quota.ParentID], store.Category{
				ID:       subID,
				Name:     subID,
				ParentID: quota.ParentID,
			})
			for q := 0; q < questionsPerSub; q++ {
				repo.questions[subID] = append(repo.questions[subID], store.Question{
					ID:            fmt.Sprintf("%s-q%d", subID, q),
					CategoryID:    subID,
					Text:          "?",
					CorrectAnswer: "a",
				})
			}
		}
	}
}

func newFakeRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		subs:      make(map[string][]store.Category),
		stats:     make(map[string]store.CategoryStats),
		questions: make(map[string][]store.Question),
	}
}

func TestGenerate_FullInventoryMeetsQuotas(t *testing.T) {
	repo := newFakeRepo()
	seedQuestions(repo, LegTechnicalLegal, 2, 20)
	gen := NewGenerator(repo, randx.Seeded(1))

	questions, err := gen.Generate(context.Background(), LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bp := BlueprintFor(LegTechnicalLegal)
	if len(questions) != bp.TotalQuestions() {
		t.Fatalf("got %d questions, want %d", len(questions), bp.TotalQuestions())
	}

	// Per-parent counts match the quota table regardless of shuffle.
	perParent := make(map[string]int)
	for _, q := range questions {
		for _, quota := range bp.Quotas {
			for _, sub := range repo.subs[quota.ParentID] {
				if q.CategoryID == sub.ID {
					perParent[quota.ParentID]++
				}
			}
		}
	}
	for _, quota := range bp.Quotas {
		if perParent[quota.ParentID] != quota.Questions {
			t.Errorf("parent %s contributed %d questions, want %d",
				quota.ParentID, perParent[quota.ParentID], quota.Questions)
		}
	}
}

func TestGenerate_NoDuplicates(t *testing.T) {
	repo := newFakeRepo()
	seedQuestions(repo, LegHumanEnvironment, 3, 10)
	gen := NewGenerator(repo, randx.Seeded(7))

	questions, err := gen.Generate(context.Background(), LegHumanEnvironment)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerate_ThinInventoryYieldsShortExam(t *testing.T) {
	repo := newFakeRepo()
	seedQuestions(repo, LegTechnicalLegal, 1, 2) // 2 questions per parent, quotas want 8-14
	gen := NewGenerator(repo, randx.Seeded(3))

	questions, err := gen.Generate(context.Background(), LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bp := BlueprintFor(LegTechnicalLegal)
	want := 2 * len(bp.Quotas)
	if len(questions) != want {
		t.Errorf("got %d questions, want %d", len(questions), want)
	}
	if len(questions) > bp.TotalQuestions() {
		t.Errorf("exam exceeds blueprint total: %d > %d", len(questions), bp.TotalQuestions())
	}
}

func TestGenerate_ParentWithoutSubcategoriesAllowsMockOnly(t *testing.T) {
	repo := newFakeRepo()
	// No subcategories anywhere; give one parent direct mock-only questions.
	bp := BlueprintFor(LegHumanEnvironment)
	parent := bp.Quotas[0].ParentID
	for i := 0; i < bp.Quotas[0].Questions; i++ {
		repo.questions[parent] = append(repo.questions[parent], store.Question{
			ID:            fmt.Sprintf("%s-q%d", parent, i),
			CategoryID:    parent,
			MockOnly:      true,
			CorrectAnswer: "a",
		})
	}
	gen := NewGenerator(repo, randx.Seeded(5))

	questions, err := gen.Generate(context.Background(), LegHumanEnvironment)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != bp.Quotas[0].Questions {
		t.Errorf("got %d questions, want %d from the parent fallback",
			len(questions), bp.Quotas[0].Questions)
	}
}

func TestGenerate_StoreErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.subsErr = errors.New("db locked")
	gen := NewGenerator(repo, randx.Seeded(1))

	_, err := gen.Generate(context.Background(), LegTechnicalLegal)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, repo.subsErr) {
		t.Errorf("error %v does not wrap the store error", err)
	}
}

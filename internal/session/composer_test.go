package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tkoehler/skyprep/internal/exam"
	"github.com/tkoehler/skyprep/internal/store"
)

// fakeCategoryRepo is a deterministic in-memory category store for tests.
type fakeCategoryRepo struct {
	subs      map[string][]store.Category
	stats     map[string]store.CategoryStats
	questions map[string][]store.Question
	subsErr   error
	statsErr  error
	sampleErr error
}

func newFakeRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		subs:      make(map[string][]store.Category),
		stats:     make(map[string]store.CategoryStats),
		questions: make(map[string][]store.Question),
	}
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
	return f.stats[categoryID], nil
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
	if f.sampleErr != nil {
		return nil, f.sampleErr
	}
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
	return nil, nil
}

// addSubcategory registers a subcategory with n questions and the given
// answer history.
func (f *fakeCategoryRepo) addSubcategory(parentID, subID string, n, answered, correct int) {
	f.subs[parentID] = append(f.subs[parentID], store.Category{ID: subID, Name: subID, ParentID: parentID})
	f.stats[subID] = store.CategoryStats{
		CategoryID:     subID,
		Name:           subID,
		TotalQuestions: n,
		Answered:       answered,
		Correct:        correct,
	}
	for i := 0; i < n; i++ {
		f.questions[subID] = append(f.questions[subID], store.Question{
			ID:         fmt.Sprintf("%s-q%d", subID, i),
			CategoryID: subID,
		})
	}
}

// seedLeg gives every blueprint parent of the leg one subcategory with
// plenty of questions and no answer history.
func seedLeg(f *fakeCategoryRepo, leg exam.Leg) {
	for _, quota := range exam.BlueprintFor(leg).Quotas {
		f.addSubcategory(quota.ParentID, quota.ParentID+"-sub", 40, 0, 0)
	}
}

func TestGenerate_QuickReviewCount(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegTechnicalLegal)
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), QuickReview(), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 10 {
		t.Errorf("got %d questions, want 10", len(ids))
	}
}

func TestGenerate_DailyPracticeCount(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegTechnicalLegal)
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), DailyPractice(), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 20 {
		t.Errorf("got %d questions, want 20", len(ids))
	}
}

func TestGenerate_PreExamDrillUsesFullExamSize(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegHumanEnvironment)
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), PreExamDrill(), exam.LegHumanEnvironment)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := exam.BlueprintFor(exam.LegHumanEnvironment).TotalQuestions()
	if len(ids) != want {
		t.Errorf("got %d questions, want %d", len(ids), want)
	}
}

func TestGenerate_SubjectFocusScopedToParent(t *testing.T) {
	repo := newFakeRepo()
	repo.addSubcategory("meteorology", "met-clouds", 30, 0, 0)
	repo.addSubcategory("meteorology", "met-fronts", 30, 0, 0)
	repo.addSubcategory("air-law", "law-rules", 30, 0, 0)
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), SubjectFocus("meteorology"), exam.LegHumanEnvironment)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 20 {
		t.Errorf("got %d questions, want 20", len(ids))
	}
	for _, id := range ids {
		if id[:4] != "met-" {
			t.Errorf("question %s is outside the meteorology scope", id)
		}
	}
}

func TestGenerate_LegFocusUsesEmbeddedLeg(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegPlanningNavigation)
	composer := NewComposer(repo)

	// The scope argument names a different leg; the embedded one wins.
	ids, err := composer.Generate(context.Background(), LegFocus(exam.LegPlanningNavigation), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 30 {
		t.Errorf("got %d questions, want 30", len(ids))
	}
}

func TestGenerate_WeakAreaFocusPicksWeakestTopics(t *testing.T) {
	repo := newFakeRepo()
	bp := exam.BlueprintFor(exam.LegTechnicalLegal)
	parent := bp.Quotas[0].ParentID
	// Six answered subcategories with distinct accuracy; the strongest
	// must not contribute.
	for i, correct := range []int{1, 2, 3, 4, 5, 10} {
		repo.addSubcategory(parent, fmt.Sprintf("sub-%d", i), 20, 10, correct)
	}
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), WeakAreaFocus(), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 15 {
		t.Errorf("got %d questions, want 15", len(ids))
	}
	for _, id := range ids {
		if id[:5] == "sub-5" {
			t.Errorf("question %s drawn from the strongest subcategory", id)
		}
	}
}

func TestGenerate_WeakAreaFocusNoHistoryYieldsEmptyPool(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegTechnicalLegal) // subcategories exist but nothing answered
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), WeakAreaFocus(), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("got %d questions, want empty pool", len(ids))
	}
}

func TestGenerate_EmptyScopeYieldsEmptyPool(t *testing.T) {
	repo := newFakeRepo() // no subcategories at all
	composer := NewComposer(repo)

	ids, err := composer.Generate(context.Background(), SubjectFocus("leaf-category"), exam.LegTechnicalLegal)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("got %d questions, want empty pool", len(ids))
	}
}

func TestGenerate_StoreErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	seedLeg(repo, exam.LegTechnicalLegal)
	repo.sampleErr = errors.New("db locked")
	composer := NewComposer(repo)

	_, err := composer.Generate(context.Background(), DailyPractice(), exam.LegTechnicalLegal)
	if !errors.Is(err, repo.sampleErr) {
		t.Errorf("error %v does not wrap the store error", err)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	composer := NewComposer(newFakeRepo())
	_, err := composer.Generate(context.Background(), Type{Kind: Kind("bogus")}, exam.LegTechnicalLegal)
	if err == nil {
		t.Fatal("expected error for unknown session kind")
	}
}

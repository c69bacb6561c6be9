package analysis

import (
	"reflect"
	"testing"
)

func TestWeakestSubcategories_OrdersByAccuracy(t *testing.T) {
	accs := []CategoryAccuracy{
		{CategoryID: "met-clouds", Answered: 10, Correct: 9},
		{CategoryID: "law-rules", Answered: 10, Correct: 3},
		{CategoryID: "nav-charts", Answered: 20, Correct: 12},
	}

	got := WeakestSubcategories(accs)
	want := []string{"law-rules", "nav-charts", "met-clouds"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakestSubcategories() = %v, want %v", got, want)
	}
}

func TestWeakestSubcategories_ExcludesUnanswered(t *testing.T) {
	accs := []CategoryAccuracy{
		{CategoryID: "met-clouds", Answered: 0, Correct: 0},
		{CategoryID: "law-rules", Answered: 4, Correct: 4},
	}

	got := WeakestSubcategories(accs)
	want := []string{"law-rules"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakestSubcategories() = %v, want %v", got, want)
	}
}

func TestWeakestSubcategories_AllUnanswered(t *testing.T) {
	accs := []CategoryAccuracy{
		{CategoryID: "a", Answered: 0},
		{CategoryID: "b", Answered: 0},
	}

	if got := WeakestSubcategories(accs); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestWeakestSubcategories_TieBreaksByID(t *testing.T) {
	accs := []CategoryAccuracy{
		{CategoryID: "zulu", Answered: 10, Correct: 5},
		{CategoryID: "alpha", Answered: 4, Correct: 2},
		{CategoryID: "mike", Answered: 2, Correct: 1},
	}

	got := WeakestSubcategories(accs)
	want := []string{"alpha", "mike", "zulu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakestSubcategories() = %v, want %v", got, want)
	}
}

func TestWeakestN_Truncates(t *testing.T) {
	accs := []CategoryAccuracy{
		{CategoryID: "a", Answered: 10, Correct: 1},
		{CategoryID: "b", Answered: 10, Correct: 2},
		{CategoryID: "c", Answered: 10, Correct: 3},
	}

	got := WeakestN(accs, 2)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakestN() = %v, want %v", got, want)
	}

	if got := WeakestN(accs, 5); len(got) != 3 {
		t.Errorf("WeakestN(5) returned %d ids, want 3", len(got))
	}
}

func TestPercentage(t *testing.T) {
	a := CategoryAccuracy{Answered: 8, Correct: 6}
	if got := a.Percentage(); got != 75.0 {
		t.Errorf("Percentage() = %v, want 75.0", got)
	}

	empty := CategoryAccuracy{}
	if got := empty.Percentage(); got != 0 {
		t.Errorf("Percentage() with no answers = %v, want 0", got)
	}
}

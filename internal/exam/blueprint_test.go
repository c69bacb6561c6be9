package exam

import (
	"testing"
	"time"
)

func TestBlueprint_QuotaTotals(t *testing.T) {
	cases := []struct {
		leg         Leg
		wantParents int
		wantTotal   int
	}{
		{LegTechnicalLegal, 4, 44},
		{LegHumanEnvironment, 3, 40},
		{LegPlanningNavigation, 6, 44},
	}

	for _, tc := range cases {
		bp := BlueprintFor(tc.leg)
		if len(bp.Quotas) != tc.wantParents {
			t.Errorf("%s: %d parents, want %d", tc.leg, len(bp.Quotas), tc.wantParents)
		}
		if got := bp.TotalQuestions(); got != tc.wantTotal {
			t.Errorf("%s: TotalQuestions() = %d, want %d", tc.leg, got, tc.wantTotal)
		}
	}
}

func TestBlueprint_TimeLimitRoundsUpPastExactBoundary(t *testing.T) {
	// 44 questions * 75s = 55min of budget -> next boundary is 60.
	bp := BlueprintFor(LegTechnicalLegal)
	if got := bp.TimeLimitMinutes(); got != 60 {
		t.Errorf("TimeLimitMinutes() = %d, want 60", got)
	}

	// 40 questions * 75s = 50min of budget -> 55.
	bp = BlueprintFor(LegHumanEnvironment)
	if got := bp.TimeLimitMinutes(); got != 55 {
		t.Errorf("TimeLimitMinutes() = %d, want 55", got)
	}
}

func TestBlueprint_TimeLimitDuration(t *testing.T) {
	bp := BlueprintFor(LegPlanningNavigation)
	want := time.Duration(bp.TimeLimitMinutes()) * time.Minute
	if got := bp.TimeLimit(); got != want {
		t.Errorf("TimeLimit() = %v, want %v", got, want)
	}
}

func TestBlueprintFor_UnknownLeg(t *testing.T) {
	bp := BlueprintFor(Leg("bogus"))
	if len(bp.Quotas) != 0 {
		t.Errorf("unknown leg has %d quotas, want 0", len(bp.Quotas))
	}
	if bp.TimeLimitMinutes() != 0 {
		t.Errorf("unknown leg TimeLimitMinutes() = %d, want 0", bp.TimeLimitMinutes())
	}
}

func TestLegs_Order(t *testing.T) {
	legs := Legs()
	want := []Leg{LegTechnicalLegal, LegHumanEnvironment, LegPlanningNavigation}
	if len(legs) != len(want) {
		t.Fatalf("Legs() returned %d legs, want %d", len(legs), len(want))
	}
	for i := range want {
		if legs[i] != want[i] {
			t.Errorf("Legs()[%d] = %s, want %s", i, legs[i], want[i])
		}
	}
}

package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewCard_Defaults(t *testing.T) {
	c := NewCard("q-1", testNow)

	if c.Box != 0 {
		t.Errorf("Box = %d, want 0", c.Box)
	}
	if c.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", c.EaseFactor, DefaultEaseFactor)
	}
	if c.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", c.IntervalDays)
	}
	if c.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", c.Repetitions)
	}
	if !c.IsDue(testNow) {
		t.Error("new card should be due immediately")
	}
}

func TestProcess_FirstCorrect_IntervalOneDay(t *testing.T) {
	c := Process(NewCard("q-1", testNow), true, testNow)

	if c.Box != 1 {
		t.Errorf("Box = %d, want 1", c.Box)
	}
	if c.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", c.IntervalDays)
	}
	if c.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", c.Repetitions)
	}
	wantNext := testNow.AddDate(0, 0, 1)
	if !c.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, wantNext)
	}
}

func TestProcess_SecondCorrect_IntervalSixDays(t *testing.T) {
	c := Process(NewCard("q-1", testNow), true, testNow)
	c = Process(c, true, testNow)

	if c.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", c.IntervalDays)
	}
}

func TestProcess_ThirdCorrect_MultiplicativeInterval(t *testing.T) {
	c := Process(NewCard("q-1", testNow), true, testNow)
	c = Process(c, true, testNow)
	easeAfterSecond := c.EaseFactor

	c = Process(c, true, testNow)

	want := int(math.Round(6 * easeAfterSecond))
	if c.IntervalDays != want {
		t.Errorf("IntervalDays = %d, want %d", c.IntervalDays, want)
	}
}

// Three consecutive correct answers from a fresh card: box 3, three
// repetitions, interval round(6*2.7)=16, ease 2.8.
func TestProcess_ThreeCorrectScenario(t *testing.T) {
	c := NewCard("q-1", testNow)
	for i := 0; i < 3; i++ {
		c = Process(c, true, testNow)
	}

	if c.Box != 3 {
		t.Errorf("Box = %d, want 3", c.Box)
	}
	if c.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", c.Repetitions)
	}
	if c.IntervalDays != 16 {
		t.Errorf("IntervalDays = %d, want 16", c.IntervalDays)
	}
	if math.Abs(c.EaseFactor-2.8) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.8", c.EaseFactor)
	}
}

func TestProcess_Incorrect_ResetsProgression(t *testing.T) {
	c := NewCard("q-1", testNow)
	for i := 0; i < 4; i++ {
		c = Process(c, true, testNow)
	}
	easeBefore := c.EaseFactor

	c = Process(c, false, testNow)

	if c.Box != 0 {
		t.Errorf("Box = %d, want 0", c.Box)
	}
	if c.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", c.IntervalDays)
	}
	if c.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", c.Repetitions)
	}
	if math.Abs(c.EaseFactor-(easeBefore-0.2)) > 1e-9 {
		t.Errorf("EaseFactor = %v, want %v", c.EaseFactor, easeBefore-0.2)
	}
	wantNext := testNow.AddDate(0, 0, 1)
	if !c.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, wantNext)
	}
}

func TestProcess_EaseMonotonicOnSuccess(t *testing.T) {
	c := NewCard("q-1", testNow)
	for i := 0; i < 20; i++ {
		before := c.EaseFactor
		c = Process(c, true, testNow)
		if c.EaseFactor < before {
			t.Fatalf("ease dropped on success: %v -> %v", before, c.EaseFactor)
		}
	}
	if c.EaseFactor != MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want ceiling %v", c.EaseFactor, MaxEaseFactor)
	}
}

// Fields stay in range under any answer sequence.
func TestProcess_ClampsUnderMixedAnswers(t *testing.T) {
	c := NewCard("q-1", testNow)
	pattern := []bool{true, true, false, true, false, false, true, true, true, true, true, false}

	for i := 0; i < 10; i++ {
		for _, correct := range pattern {
			c = Process(c, correct, testNow)
			if c.Box < MinBox || c.Box > MaxBox {
				t.Fatalf("Box out of range: %d", c.Box)
			}
			if c.EaseFactor < MinEaseFactor || c.EaseFactor > MaxEaseFactor {
				t.Fatalf("EaseFactor out of range: %v", c.EaseFactor)
			}
			if c.IntervalDays < 1 {
				t.Fatalf("IntervalDays below 1: %d", c.IntervalDays)
			}
		}
	}
}

func TestProcess_EaseFloorOnRepeatedFailure(t *testing.T) {
	c := NewCard("q-1", testNow)
	for i := 0; i < 15; i++ {
		c = Process(c, false, testNow)
	}
	if c.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", c.EaseFactor, MinEaseFactor)
	}
}

func TestProcess_BoxCapsAtFive(t *testing.T) {
	c := NewCard("q-1", testNow)
	for i := 0; i < 10; i++ {
		c = Process(c, true, testNow)
	}
	if c.Box != MaxBox {
		t.Errorf("Box = %d, want %d", c.Box, MaxBox)
	}
}

func TestCardMaturity_Mapping(t *testing.T) {
	cases := []struct {
		box  int
		reps int
		want Maturity
	}{
		{0, 0, MaturityNew},
		{0, 2, MaturityLearning},
		{1, 1, MaturityLearning},
		{2, 2, MaturityReview},
		{3, 3, MaturityReview},
		{4, 4, MaturityMastered},
		{5, 9, MaturityMastered},
	}

	for _, tc := range cases {
		c := Card{Box: tc.box, Repetitions: tc.reps}
		if got := CardMaturity(c); got != tc.want {
			t.Errorf("CardMaturity(box=%d, reps=%d) = %q, want %q", tc.box, tc.reps, got, tc.want)
		}
	}
}

func TestIsDue(t *testing.T) {
	c := Card{NextReview: testNow}
	if !c.IsDue(testNow) {
		t.Error("card due exactly now should report due")
	}
	if c.IsDue(testNow.Add(-time.Minute)) {
		t.Error("card should not be due before NextReview")
	}
}

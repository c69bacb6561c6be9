// Package session composes question pools for the adaptive practice
// modes.
package session

import "github.com/tkoehler/skyprep/internal/exam"

// Kind discriminates the practice session variants.
type Kind string

const (
	KindQuickReview   Kind = "quick-review"
	KindDailyPractice Kind = "daily-practice"
	KindWeakAreaFocus Kind = "weak-area-focus"
	KindPreExamDrill  Kind = "pre-exam-drill"
	KindSubjectFocus  Kind = "subject-focus"
	KindLegFocus      Kind = "leg-focus"
)

// Question counts per session kind.
const (
	quickReviewCount   = 10
	dailyPracticeCount = 20
	weakAreaCount      = 15
	subjectFocusCount  = 20
	legFocusCount      = 30
)

// weakAreaTopN bounds how many of the weakest subcategories feed the
// weak-area pool.
const weakAreaTopN = 5

// Type is a tagged practice-session variant. Only the fields relevant to
// the kind are set; use the constructors.
type Type struct {
	Kind     Kind
	ParentID string   // subject focus only
	Leg      exam.Leg // leg focus only
}

// QuickReview is a short 10-question mixed session.
func QuickReview() Type { return Type{Kind: KindQuickReview} }

// DailyPractice is the standard 20-question mixed session.
func DailyPractice() Type { return Type{Kind: KindDailyPractice} }

// WeakAreaFocus draws 15 questions from the learner's weakest topics.
func WeakAreaFocus() Type { return Type{Kind: KindWeakAreaFocus} }

// PreExamDrill is a full-exam-sized mixed session.
func PreExamDrill() Type { return Type{Kind: KindPreExamDrill} }

// SubjectFocus draws 20 questions from one parent category's
// subcategories.
func SubjectFocus(parentID string) Type {
	return Type{Kind: KindSubjectFocus, ParentID: parentID}
}

// LegFocus draws 30 questions from across the given leg.
func LegFocus(leg exam.Leg) Type {
	return Type{Kind: KindLegFocus, Leg: leg}
}

// Package exam holds the static exam blueprints and the mock exam
// generator and scorer built on them.
package exam

import "time"

// Leg identifies one of the three fixed exam sections.
type Leg string

const (
	LegTechnicalLegal     Leg = "technical-legal"
	LegHumanEnvironment   Leg = "human-environment"
	LegPlanningNavigation Leg = "planning-navigation"
)

// Legs returns the three legs in exam order.
func Legs() []Leg {
	return []Leg{LegTechnicalLegal, LegHumanEnvironment, LegPlanningNavigation}
}

// Quota fixes how many questions a parent category contributes to a leg's
// mock exam.
type Quota struct {
	ParentID  string
	Questions int
}

// Blueprint is the immutable per-leg exam composition: an ordered quota
// table plus derived totals and time limits.
type Blueprint struct {
	Leg      Leg
	Title    string
	Subtitle string
	Quotas   []Quota
}

// secondsPerQuestion is the time budget used to derive leg time limits.
const secondsPerQuestion = 75

// BlueprintFor returns the blueprint for a leg. Unknown legs return a
// zero blueprint with no quotas.
func BlueprintFor(leg Leg) Blueprint {
	switch leg {
	case LegTechnicalLegal:
		return Blueprint{
			Leg:      LegTechnicalLegal,
			Title:    "Leg 1",
			Subtitle: "Technical & Legal",
			Quotas: []Quota{
				{ParentID: "air-law", Questions: 14},
				{ParentID: "aircraft-knowledge", Questions: 12},
				{ParentID: "instruments", Questions: 8},
				{ParentID: "operational-procedures", Questions: 10},
			},
		}
	case LegHumanEnvironment:
		return Blueprint{
			Leg:      LegHumanEnvironment,
			Title:    "Leg 2",
			Subtitle: "Human & Environment",
			Quotas: []Quota{
				{ParentID: "human-performance", Questions: 12},
				{ParentID: "meteorology", Questions: 16},
				{ParentID: "environment", Questions: 12},
			},
		}
	case LegPlanningNavigation:
		return Blueprint{
			Leg:      LegPlanningNavigation,
			Title:    "Leg 3",
			Subtitle: "Planning & Navigation",
			Quotas: []Quota{
				{ParentID: "navigation-general", Questions: 10},
				{ParentID: "radio-navigation", Questions: 6},
				{ParentID: "flight-planning", Questions: 10},
				{ParentID: "mass-and-balance", Questions: 6},
				{ParentID: "performance", Questions: 6},
				{ParentID: "communications", Questions: 6},
			},
		}
	}
	return Blueprint{Leg: leg}
}

// TotalQuestions is the sum of the leg's quotas.
func (b Blueprint) TotalQuestions() int {
	total := 0
	for _, q := range b.Quotas {
		total += q.Questions
	}
	return total
}

// TimeLimitMinutes derives the leg's time limit from a 75-second budget
// per question, rounded up to the next 5-minute boundary (a budget that
// lands exactly on a boundary still rounds up, so 44 questions at 55
// minutes of budget yields a 60-minute limit).
func (b Blueprint) TimeLimitMinutes() int {
	totalSeconds := b.TotalQuestions() * secondsPerQuestion
	if totalSeconds == 0 {
		return 0
	}
	return (totalSeconds/300 + 1) * 5
}

// TimeLimit returns the leg's time limit as a duration.
func (b Blueprint) TimeLimit() time.Duration {
	return time.Duration(b.TimeLimitMinutes()) * time.Minute
}

// Package analysis ranks subcategories by historical answer accuracy so
// session composition can bias question pools toward weak topics.
package analysis

import "sort"

// CategoryAccuracy is the per-subcategory answer history used for
// weakness ranking.
type CategoryAccuracy struct {
	CategoryID string
	Name       string
	Answered   int
	Correct    int
}

// Percentage returns the accuracy as 0-100. Only meaningful when
// Answered > 0.
func (a CategoryAccuracy) Percentage() float64 {
	if a.Answered == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Answered) * 100
}

// WeakestSubcategories orders subcategory ids from weakest to strongest
// accuracy. Subcategories with no answered questions are excluded: there
// is no data to judge them. Equal percentages tie-break by category id
// ascending.
func WeakestSubcategories(accuracies []CategoryAccuracy) []string {
	var ranked []CategoryAccuracy
	for _, a := range accuracies {
		if a.Answered > 0 {
			ranked = append(ranked, a)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		pi, pj := ranked[i].Percentage(), ranked[j].Percentage()
		if pi != pj {
			return pi < pj
		}
		return ranked[i].CategoryID < ranked[j].CategoryID
	})

	ids := make([]string, len(ranked))
	for i, a := range ranked {
		ids[i] = a.CategoryID
	}
	return ids
}

// WeakestN returns at most n of the weakest subcategory ids.
func WeakestN(accuracies []CategoryAccuracy, n int) []string {
	ids := WeakestSubcategories(accuracies)
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

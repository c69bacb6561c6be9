package srs

// Maturity classifies a card by how far it has progressed through the
// Leitner boxes. It is a pure function of the box (plus the repetition
// count to distinguish brand-new cards from lapsed ones).
type Maturity string

const (
	MaturityNew      Maturity = "new"
	MaturityLearning Maturity = "learning"
	MaturityReview   Maturity = "review"
	MaturityMastered Maturity = "mastered"
)

// CardMaturity maps a card's box to its maturity: boxes 0-1 are
// learning (box 0 with no repetitions is new), 2-3 are review, and
// 4-5 are mastered.
func CardMaturity(card Card) Maturity {
	switch {
	case card.Box >= 4:
		return MaturityMastered
	case card.Box >= 2:
		return MaturityReview
	case card.Box == 0 && card.Repetitions == 0:
		return MaturityNew
	default:
		return MaturityLearning
	}
}

package srs

import "time"

// Box bounds for the Leitner-style stage.
const (
	MinBox = 0
	MaxBox = 5
)

// Ease factor bounds and default. The ease factor governs how quickly
// review intervals grow after the second successful review.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
	DefaultEaseFactor = 2.5
)

// Card is the spaced repetition state for a single question. One card
// exists per question the learner has ever reviewed; it is created lazily
// on the first answer and mutated only by Process.
type Card struct {
	QuestionID   string
	Box          int
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReview   time.Time
}

// NewCard returns the initial state for a question that has never been
// reviewed: box 0, default ease, a one-day interval, and due immediately.
func NewCard(questionID string, now time.Time) Card {
	return Card{
		QuestionID:   questionID,
		Box:          MinBox,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 1,
		Repetitions:  0,
		NextReview:   now,
	}
}

// IsDue reports whether the card is due for review at the given time.
func (c Card) IsDue(now time.Time) bool {
	return !c.NextReview.After(now)
}

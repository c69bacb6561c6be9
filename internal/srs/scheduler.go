package srs

import (
	"math"
	"time"
)

// Process returns the card state after one binary-graded answer.
//
// A correct answer advances the box, grows the interval on a three-tier
// curve (1 day, then 6 days, then multiplicative by the ease factor), and
// nudges the ease factor up. An incorrect answer resets progression
// entirely: box 0, one-day interval, zero repetitions, and a harder ease
// penalty than the success reward, so long intervals require sustained
// streaks while a single lapse starts the card over.
//
// All fields stay clamped to their valid ranges, so Process is total:
// repeated application can never produce an invalid card.
func Process(card Card, correct bool, now time.Time) Card {
	if correct {
		card.Box = min(card.Box+1, MaxBox)

		// Interval tier depends on the streak before this answer.
		// The multiplicative tier uses the ease factor prior to this
		// answer's adjustment.
		switch card.Repetitions {
		case 0:
			card.IntervalDays = 1
		case 1:
			card.IntervalDays = 6
		default:
			card.IntervalDays = int(math.Round(float64(card.IntervalDays) * card.EaseFactor))
		}
		if card.IntervalDays < 1 {
			card.IntervalDays = 1
		}

		card.EaseFactor = math.Min(card.EaseFactor+0.1, MaxEaseFactor)
		card.Repetitions++
		card.NextReview = now.AddDate(0, 0, card.IntervalDays)
		return card
	}

	card.Box = MinBox
	card.IntervalDays = 1
	card.Repetitions = 0
	card.EaseFactor = math.Max(card.EaseFactor-0.2, MinEaseFactor)
	card.NextReview = now.AddDate(0, 0, 1)
	return card
}

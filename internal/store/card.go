package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tkoehler/skyprep/ent"
	"github.com/tkoehler/skyprep/ent/scheduledcard"
	"github.com/tkoehler/skyprep/internal/srs"
)

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) GetOrCreate(ctx context.Context, questionID string) (srs.Card, error) {
	row, err := r.client.ScheduledCard.Get(ctx, questionID)
	if err == nil {
		return cardFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return srs.Card{}, fmt.Errorf("get card %s: %w", questionID, err)
	}

	card := srs.NewCard(questionID, time.Now())
	row, err = r.client.ScheduledCard.Create().
		SetID(card.QuestionID).
		SetBox(card.Box).
		SetEaseFactor(card.EaseFactor).
		SetIntervalDays(card.IntervalDays).
		SetRepetitions(card.Repetitions).
		SetNextReview(card.NextReview).
		Save(ctx)
	if err != nil {
		return srs.Card{}, fmt.Errorf("create card %s: %w", questionID, err)
	}
	return cardFromRow(row), nil
}

func (r *cardRepo) Update(ctx context.Context, card srs.Card) error {
	err := r.client.ScheduledCard.UpdateOneID(card.QuestionID).
		SetBox(card.Box).
		SetEaseFactor(card.EaseFactor).
		SetIntervalDays(card.IntervalDays).
		SetRepetitions(card.Repetitions).
		SetNextReview(card.NextReview).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update card %s: %w", card.QuestionID, err)
	}
	return nil
}

func (r *cardRepo) Due(ctx context.Context, now time.Time, limit int) ([]srs.Card, error) {
	q := r.client.ScheduledCard.Query().
		Where(scheduledcard.NextReviewLTE(now)).
		Order(ent.Asc(scheduledcard.FieldNextReview))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due cards: %w", err)
	}
	return cardsFromRows(rows), nil
}

func (r *cardRepo) All(ctx context.Context) ([]srs.Card, error) {
	rows, err := r.client.ScheduledCard.Query().
		Order(ent.Asc(scheduledcard.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all cards: %w", err)
	}
	return cardsFromRows(rows), nil
}

func cardFromRow(row *ent.ScheduledCard) srs.Card {
	return srs.Card{
		QuestionID:   row.ID,
		Box:          row.Box,
		EaseFactor:   row.EaseFactor,
		IntervalDays: row.IntervalDays,
		Repetitions:  row.Repetitions,
		NextReview:   row.NextReview,
	}
}

func cardsFromRows(rows []*ent.ScheduledCard) []srs.Card {
	cards := make([]srs.Card, len(rows))
	for i, row := range rows {
		cards[i] = cardFromRow(row)
	}
	return cards
}

package store

import (
	"context"
	"fmt"

	"github.com/tkoehler/skyprep/ent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetCategoryID(data.CategoryID).
		SetMode(data.Mode).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendExam(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetLeg(data.Leg).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetPercentage(data.Percentage).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

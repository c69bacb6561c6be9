package store

import (
	"context"
	"fmt"
)

// ResetProgress wipes all learner progress: scheduling state and the
// interaction log. Categories and questions are untouched.
func (s *Store) ResetProgress(ctx context.Context) error {
	if _, err := s.client.ScheduledCard.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete cards: %w", err)
	}
	if _, err := s.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	if _, err := s.client.ExamEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete exam events: %w", err)
	}
	return nil
}

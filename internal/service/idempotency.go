package service

import (
	"context"
	"errors"
	"fmt"

	"ukm-registry-backend/internal/domain"
)

// idempotentDecisionService turns a repeat of an identical decision into a
// success echo of the recorded result, and a repeat with a different outcome
// into a hard conflict.
type idempotentDecisionService struct {
	next DecisionService
}

func NewIdempotentDecisionService(next DecisionService) DecisionService {
	return &idempotentDecisionService{next: next}
}

func (s *idempotentDecisionService) Decide(ctx context.Context, in DecisionInput) (*DecisionResult, error) {
	res, err := s.next.Decide(ctx, in)
	if err == nil {
		return res, nil
	}

	var resolved *domain.AlreadyResolvedError
	if !errors.As(err, &resolved) {
		return nil, err
	}

	if resolved.Status == in.Outcome.Status() {
		return &DecisionResult{Status: resolved.Status, AlreadyApplied: true}, nil
	}
	return nil, fmt.Errorf("%w: recorded %s, requested %s", domain.ErrOutcomeConflict, resolved.Status, in.Outcome)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"tokenhub/internal/modules/allowance/domain"
	"tokenhub/internal/modules/allowance/port/out"
	"tokenhub/internal/platform/clock"
	apperrors "tokenhub/internal/platform/errors"
)

const dateLayout = "2006-01-02"

type AllowanceService struct {
	clock clock.Clock
	store out.HealthStore
}

func NewAllowanceService(clk clock.Clock, store out.HealthStore) *AllowanceService {
	return &AllowanceService{clock: clk, store: store}
}

func (s *AllowanceService) SetToday(ctx context.Context, userID string, steps, sleepMinutes int) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if steps < 0 || sleepMinutes < 0 {
		return fmt.Errorf("%w: health metrics must not be negative", apperrors.ErrInvalidInput)
	}
	snapshot := domain.HealthSnapshot{
		Steps:        steps,
		SleepMinutes: sleepMinutes,
		Date:         s.clock.Now().Format(dateLayout),
	}
	if err := s.store.Save(ctx, userID, snapshot); err != nil {
		return fmt.Errorf("persist health snapshot: %w", err)
	}
	return nil
}

func (s *AllowanceService) Snapshot(ctx context.Context, userID string) (domain.HealthSnapshot, error) {
	return s.store.Load(ctx, userID)
}

// ComputeToday returns the allowance earned by today's snapshot. A snapshot
// recorded on an earlier day earns nothing, so a user who stops syncing
// health data stops earning tokens.
func (s *AllowanceService) ComputeToday(ctx context.Context, userID string) (domain.Allowance, error) {
	snapshot, err := s.store.Load(ctx, userID)
	if errors.Is(err, apperrors.ErrNoHealthSnapshot) {
		return domain.Allowance{}, nil
	}
	if err != nil {
		return domain.Allowance{}, fmt.Errorf("load health snapshot: %w", err)
	}
	if snapshot.Date != s.clock.Now().Format(dateLayout) {
		return domain.Allowance{}, nil
	}
	return domain.Compute(snapshot), nil
}

package in

import (
	"context"

	"tokenhub/internal/modules/allowance/dto"
)

type Usecase interface {
	// SetToday records the user's health metrics for the current local day,
	// replacing any earlier snapshot.
	SetToday(ctx context.Context, input dto.SetHealthInput) error
	Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.HealthOutput, error)
	// ComputeToday derives the daily token allowance from the stored
	// snapshot. A missing or stale snapshot yields a zero allowance.
	ComputeToday(ctx context.Context, input dto.ComputeInput) (dto.AllowanceOutput, error)
	Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error)
}

package in

import (
	"context"

	allowancedto "tokenhub/internal/modules/allowance/dto"
	allowancein "tokenhub/internal/modules/allowance/port/in"
)

type CLIHandler struct {
	usecase allowancein.Usecase
}

func NewCLIHandler(usecase allowancein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetToday(ctx context.Context, userID string, steps, sleepMinutes int) error {
	return h.usecase.SetToday(ctx, allowancedto.SetHealthInput{UserID: userID, Steps: steps, SleepMinutes: sleepMinutes})
}

func (h CLIHandler) Snapshot(ctx context.Context, userID string) (allowancedto.HealthOutput, error) {
	return h.usecase.Snapshot(ctx, allowancedto.SnapshotInput{UserID: userID})
}

func (h CLIHandler) Summary(ctx context.Context, userID string) (allowancedto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, allowancedto.SummaryInput{UserID: userID})
}

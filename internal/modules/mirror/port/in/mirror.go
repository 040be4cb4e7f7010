package in

import (
	"context"

	"tokenhub/internal/modules/mirror/dto"
)

// Usecase replicates scans to the shared family space. LogScan and the clear
// operations are fire-and-forget: they return before the remote call runs and
// never report its outcome.
type Usecase interface {
	LogScan(ctx context.Context, input dto.LogScanInput)
	ClearUser(ctx context.Context, input dto.ClearUserInput)
	ClearToday(ctx context.Context, input dto.ClearTodayInput)

	Serve(ctx context.Context, addr string) error
	ListRemote(ctx context.Context, input dto.ListInput) ([]dto.Document, error)
}

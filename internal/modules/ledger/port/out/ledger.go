package out

import (
	"context"

	"tokenhub/internal/modules/ledger/domain"
)

// Store is the durable source of truth for accepted scans. Implementations
// must serialize every operation behind a single critical section: clears may
// race an in-flight scan, and the backing model is a read-modify-write of one
// ordered collection.
type Store interface {
	Append(ctx context.Context, record domain.ScanRecord) error
	QueryAll(ctx context.Context, userID string) ([]domain.ScanRecord, error)
	CountAutomatedToday(ctx context.Context, userID, category string, window domain.DayWindow) (int, error)
	ClearAll(ctx context.Context) error
	ClearUser(ctx context.Context, userID string) error
	ClearTodayUser(ctx context.Context, userID string, window domain.DayWindow) error
}

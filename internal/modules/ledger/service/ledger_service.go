package service

import (
	"context"
	"fmt"

	"tokenhub/internal/modules/ledger/domain"
	ledgerout "tokenhub/internal/modules/ledger/port/out"
	"tokenhub/internal/platform/clock"
	"tokenhub/internal/platform/id"
)

type LedgerService struct {
	clock clock.Clock
	idGen id.Generator
	store ledgerout.Store
}

func NewLedgerService(clock clock.Clock, idGen id.Generator, store ledgerout.Store) *LedgerService {
	return &LedgerService{clock: clock, idGen: idGen, store: store}
}

// Append persists a record, assigning an id and timestamp when absent.
// Persistence errors propagate: the local ledger is the enforcement source
// of truth and must not silently diverge from what the user is told.
func (s *LedgerService) Append(ctx context.Context, record domain.ScanRecord) (domain.ScanRecord, error) {
	if record.ID == "" {
		record.ID = s.idGen.New()
	}
	if record.Timestamp == 0 {
		record.Timestamp = s.clock.Now().UnixMilli()
	}
	if err := record.Validate(); err != nil {
		return domain.ScanRecord{}, fmt.Errorf("invalid scan record: %w", err)
	}
	if err := s.store.Append(ctx, record); err != nil {
		return domain.ScanRecord{}, fmt.Errorf("persist scan: %w", err)
	}
	return record, nil
}

func (s *LedgerService) History(ctx context.Context, userID string) ([]domain.ScanRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.store.QueryAll(ctx, userID)
}

func (s *LedgerService) CountAutomatedToday(ctx context.Context, userID, category string) (int, error) {
	if userID == "" || category == "" {
		return 0, fmt.Errorf("user id and category are required")
	}
	return s.store.CountAutomatedToday(ctx, userID, category, s.TodayWindow())
}

func (s *LedgerService) ClearAll(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}

func (s *LedgerService) ClearUser(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	return s.store.ClearUser(ctx, userID)
}

func (s *LedgerService) ClearTodayUser(ctx context.Context, userID string, window domain.DayWindow) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	return s.store.ClearTodayUser(ctx, userID, window)
}

// TodayWindow is the single source for the local-day boundary; clears and
// counts must agree on it.
func (s *LedgerService) TodayWindow() domain.DayWindow {
	return domain.DayWindowAt(s.clock.Now())
}

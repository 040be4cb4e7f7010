package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	allowanceout "tokenhub/internal/modules/allowance/adapter/out"
	allowancedto "tokenhub/internal/modules/allowance/dto"
	"tokenhub/internal/modules/allowance/service"
	"tokenhub/internal/modules/allowance/usecase"
	ledgerout "tokenhub/internal/modules/ledger/adapter/out"
	ledgerdomain "tokenhub/internal/modules/ledger/domain"
	ledgerdto "tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
	ledgerservice "tokenhub/internal/modules/ledger/service"
	ledgerusecase "tokenhub/internal/modules/ledger/usecase"
	apperrors "tokenhub/internal/platform/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type seqID struct {
	n int
}

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newFixture(t *testing.T, clk fixedClock) (*usecase.Interactor, ledgerin.Usecase) {
	t.Helper()
	dir := t.TempDir()
	ledgerStore := ledgerout.NewFileStore(filepath.Join(dir, "scans.json"))
	ledger := ledgerusecase.NewInteractor(ledgerservice.NewLedgerService(clk, &seqID{}, ledgerStore), nil)
	healthStore := allowanceout.NewFileHealthStore(dir)
	allowance := usecase.NewInteractor(service.NewAllowanceService(clk, healthStore), ledger)
	return allowance, ledger
}

func TestSummaryCombinesAllowanceAndUsage(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	allowance, ledger := newFixture(t, fixedClock{now: now})
	ctx := context.Background()

	if err := allowance.SetToday(ctx, allowancedto.SetHealthInput{UserID: "u1", Steps: 10500, SleepMinutes: 130}); err != nil {
		t.Fatalf("set health: %v", err)
	}
	if _, err := ledger.Append(ctx, ledgerdto.AppendInput{UserID: "u1", Type: ledgerdomain.TypeAutomated, Category: "steps", Amount: 4}); err != nil {
		t.Fatalf("append: %v", err)
	}

	summary, err := allowance.Summary(ctx, allowancedto.SummaryInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Allowance.Steps != 10 || summary.Allowance.Sleep != 2 {
		t.Fatalf("unexpected allowance: %+v", summary.Allowance)
	}
	if summary.StepsUsed != 4 || summary.StepsRemaining != 6 {
		t.Fatalf("unexpected steps usage: %+v", summary)
	}
	if summary.SleepUsed != 0 || summary.SleepRemaining != 2 {
		t.Fatalf("unexpected sleep usage: %+v", summary)
	}
}

func TestStaleSnapshotEarnsNothing(t *testing.T) {
	t.Parallel()
	yesterday := time.Date(2026, 3, 13, 22, 0, 0, 0, time.Local)
	today := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)

	dir := t.TempDir()
	healthStore := allowanceout.NewFileHealthStore(dir)
	ctx := context.Background()

	old := usecase.NewInteractor(service.NewAllowanceService(fixedClock{now: yesterday}, healthStore), nil)
	if err := old.SetToday(ctx, allowancedto.SetHealthInput{UserID: "u1", Steps: 9000, SleepMinutes: 480}); err != nil {
		t.Fatalf("set health: %v", err)
	}

	current := usecase.NewInteractor(service.NewAllowanceService(fixedClock{now: today}, healthStore), nil)
	got, err := current.ComputeToday(ctx, allowancedto.ComputeInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got.Steps != 0 || got.Sleep != 0 {
		t.Fatalf("stale snapshot must earn nothing, got %+v", got)
	}
}

func TestComputeTodayWithoutSnapshotIsZero(t *testing.T) {
	t.Parallel()
	allowance, _ := newFixture(t, fixedClock{now: time.Now()})

	got, err := allowance.ComputeToday(context.Background(), allowancedto.ComputeInput{UserID: "nobody"})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got.Steps != 0 || got.Sleep != 0 {
		t.Fatalf("missing snapshot must earn nothing, got %+v", got)
	}
}

func TestSnapshotMissingIsNotFound(t *testing.T) {
	t.Parallel()
	allowance, _ := newFixture(t, fixedClock{now: time.Now()})

	_, err := allowance.Snapshot(context.Background(), allowancedto.SnapshotInput{UserID: "nobody"})
	if !errors.Is(err, apperrors.ErrNoHealthSnapshot) {
		t.Fatalf("expected ErrNoHealthSnapshot, got %v", err)
	}
}

func TestSetTodayRejectsNegativeMetrics(t *testing.T) {
	t.Parallel()
	allowance, _ := newFixture(t, fixedClock{now: time.Now()})

	err := allowance.SetToday(context.Background(), allowancedto.SetHealthInput{UserID: "u1", Steps: -1})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

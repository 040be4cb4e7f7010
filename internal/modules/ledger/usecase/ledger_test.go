package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	out "tokenhub/internal/modules/ledger/adapter/out"
	"tokenhub/internal/modules/ledger/domain"
	ledgerdto "tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
	"tokenhub/internal/modules/ledger/service"
	"tokenhub/internal/modules/ledger/usecase"
	mirrordto "tokenhub/internal/modules/mirror/dto"
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

type recordingMirror struct {
	logged     []mirrordto.LogScanInput
	clearUser  []mirrordto.ClearUserInput
	clearToday []mirrordto.ClearTodayInput
}

func (m *recordingMirror) LogScan(_ context.Context, input mirrordto.LogScanInput) {
	m.logged = append(m.logged, input)
}
func (m *recordingMirror) ClearUser(_ context.Context, input mirrordto.ClearUserInput) {
	m.clearUser = append(m.clearUser, input)
}
func (m *recordingMirror) ClearToday(_ context.Context, input mirrordto.ClearTodayInput) {
	m.clearToday = append(m.clearToday, input)
}
func (m *recordingMirror) Serve(context.Context, string) error { return errors.New("not served") }
func (m *recordingMirror) ListRemote(context.Context, mirrordto.ListInput) ([]mirrordto.Document, error) {
	return nil, nil
}

func newLedger(t *testing.T, clk fixedClock, mirror *recordingMirror) ledgerin.Usecase {
	t.Helper()
	store := out.NewFileStore(filepath.Join(t.TempDir(), "scans.json"))
	return usecase.NewInteractor(service.NewLedgerService(clk, &seqID{}, store), mirror)
}

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	ledger := newLedger(t, fixedClock{now: now}, &recordingMirror{})

	stored, err := ledger.Append(context.Background(), ledgerdto.AppendInput{
		UserID:   "u1",
		Type:     domain.TypeAutomated,
		Category: "steps",
		Amount:   5,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID != "id-1" {
		t.Fatalf("expected generated id, got %q", stored.ID)
	}
	if stored.Timestamp != now.UnixMilli() {
		t.Fatalf("expected clock timestamp %d, got %d", now.UnixMilli(), stored.Timestamp)
	}

	count, err := ledger.CountAutomatedToday(context.Background(), ledgerdto.CountInput{UserID: "u1", Category: "steps"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected count 5, got %d", count)
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	t.Parallel()
	ledger := newLedger(t, fixedClock{now: time.Now()}, &recordingMirror{})

	_, err := ledger.Append(context.Background(), ledgerdto.AppendInput{
		UserID: "u1",
		Type:   domain.TypeMood,
		Mood:   "Calm",
		Amount: 3,
	})
	if err == nil {
		t.Fatalf("expected mood amount invariant to fail")
	}
}

func TestClearTodayMirrorsSameWindow(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 22, 45, 0, 0, time.Local)
	mirror := &recordingMirror{}
	ledger := newLedger(t, fixedClock{now: now}, mirror)

	if err := ledger.ClearToday(context.Background(), ledgerdto.ClearInput{UserID: "u1", Space: "smiths"}); err != nil {
		t.Fatalf("clear today: %v", err)
	}
	if len(mirror.clearToday) != 1 {
		t.Fatalf("expected one mirrored clear, got %d", len(mirror.clearToday))
	}
	window := domain.DayWindowAt(now)
	got := mirror.clearToday[0]
	if got.Space != "smiths" || got.UserID != "u1" || got.StartMillis != window.Start || got.EndMillis != window.End {
		t.Fatalf("mirrored clear window mismatch: %+v", got)
	}
}

func TestClearWithoutSpaceStaysLocal(t *testing.T) {
	t.Parallel()
	mirror := &recordingMirror{}
	ledger := newLedger(t, fixedClock{now: time.Now()}, mirror)

	if err := ledger.ClearUser(context.Background(), ledgerdto.ClearInput{UserID: "u1"}); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	if len(mirror.clearUser) != 0 {
		t.Fatalf("expected no mirrored clear without a space")
	}
}

func TestHistoryIsNewestFirst(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	ledger := newLedger(t, fixedClock{now: now}, &recordingMirror{})

	older := now.Add(-2 * time.Hour).UnixMilli()
	if _, err := ledger.Append(context.Background(), ledgerdto.AppendInput{UserID: "u1", Type: domain.TypeAutomated, Category: "sleep", Amount: 1, Timestamp: older}); err != nil {
		t.Fatalf("append older: %v", err)
	}
	if _, err := ledger.Append(context.Background(), ledgerdto.AppendInput{UserID: "u1", Type: domain.TypeMood, Mood: "Calm", Amount: 1}); err != nil {
		t.Fatalf("append newer: %v", err)
	}

	history, err := ledger.History(context.Background(), ledgerdto.HistoryInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Mood != "Calm" || history[1].Category != "sleep" {
		t.Fatalf("unexpected history order: %+v", history)
	}
}

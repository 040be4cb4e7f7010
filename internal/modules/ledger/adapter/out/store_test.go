package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	out "tokenhub/internal/modules/ledger/adapter/out"
	"tokenhub/internal/modules/ledger/domain"
	ledgerout "tokenhub/internal/modules/ledger/port/out"
)

func storeBackends(t *testing.T) map[string]ledgerout.Store {
	t.Helper()
	sqlite, err := out.NewSQLiteStore(filepath.Join(t.TempDir(), "tokens.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	return map[string]ledgerout.Store{
		"sqlite": sqlite,
		"file":   out.NewFileStore(filepath.Join(t.TempDir(), "scans.json")),
	}
}

func record(id, userID, typ, category, mood string, amount int, ts int64) domain.ScanRecord {
	return domain.ScanRecord{ID: id, UserID: userID, Type: typ, Category: category, Mood: mood, Amount: amount, Timestamp: ts}
}

func TestStoreQueryAllNewestFirst(t *testing.T) {
	t.Parallel()
	for name, store := range storeBackends(t) {
		ctx := context.Background()
		mustAppend(t, store, record("a", "u1", domain.TypeAutomated, "steps", "", 2, 100))
		mustAppend(t, store, record("b", "u1", domain.TypeMood, "", "Calm", 1, 300))
		mustAppend(t, store, record("c", "u1", domain.TypeAutomated, "sleep", "", 1, 200))
		mustAppend(t, store, record("d", "u2", domain.TypeAutomated, "steps", "", 4, 400))

		got, err := store.QueryAll(ctx, "u1")
		if err != nil {
			t.Fatalf("%s: query all: %v", name, err)
		}
		if len(got) != 3 {
			t.Fatalf("%s: expected 3 records for u1, got %d", name, len(got))
		}
		if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
			t.Fatalf("%s: expected newest first ordering, got %s %s %s", name, got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestStoreCountAutomatedTodayFiltersExactly(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	window := domain.DayWindowAt(now)

	for name, store := range storeBackends(t) {
		ctx := context.Background()
		mustAppend(t, store, record("in-1", "u1", domain.TypeAutomated, "steps", "", 5, window.Start))
		mustAppend(t, store, record("in-2", "u1", domain.TypeAutomated, "steps", "", 3, window.End))
		mustAppend(t, store, record("other-cat", "u1", domain.TypeAutomated, "sleep", "", 7, window.Start+10))
		mustAppend(t, store, record("mood", "u1", domain.TypeMood, "", "Calm", 1, window.Start+20))
		mustAppend(t, store, record("other-user", "u2", domain.TypeAutomated, "steps", "", 9, window.Start+30))
		mustAppend(t, store, record("yesterday", "u1", domain.TypeAutomated, "steps", "", 11, window.Start-1))
		mustAppend(t, store, record("tomorrow", "u1", domain.TypeAutomated, "steps", "", 13, window.End+1))

		total, err := store.CountAutomatedToday(ctx, "u1", "steps", window)
		if err != nil {
			t.Fatalf("%s: count: %v", name, err)
		}
		if total != 8 {
			t.Fatalf("%s: expected sum 8 inside window, got %d", name, total)
		}
	}
}

func TestStoreClearTodayUserLeavesOtherRecords(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	window := domain.DayWindowAt(now)

	for name, store := range storeBackends(t) {
		ctx := context.Background()
		mustAppend(t, store, record("today-1", "u1", domain.TypeAutomated, "steps", "", 5, window.Start+10))
		mustAppend(t, store, record("today-2", "u1", domain.TypeMood, "", "Happy", 1, window.End))
		mustAppend(t, store, record("yesterday", "u1", domain.TypeAutomated, "steps", "", 2, window.Start-1))
		mustAppend(t, store, record("other-user", "u2", domain.TypeAutomated, "steps", "", 3, window.Start+10))

		if err := store.ClearTodayUser(ctx, "u1", window); err != nil {
			t.Fatalf("%s: clear today: %v", name, err)
		}

		u1, err := store.QueryAll(ctx, "u1")
		if err != nil {
			t.Fatalf("%s: query u1: %v", name, err)
		}
		if len(u1) != 1 || u1[0].ID != "yesterday" {
			t.Fatalf("%s: expected only yesterday's record to remain, got %+v", name, u1)
		}
		u2, err := store.QueryAll(ctx, "u2")
		if err != nil {
			t.Fatalf("%s: query u2: %v", name, err)
		}
		if len(u2) != 1 {
			t.Fatalf("%s: other user's records must remain, got %d", name, len(u2))
		}
	}
}

func TestStoreClearUserAndClearAll(t *testing.T) {
	t.Parallel()
	for name, store := range storeBackends(t) {
		ctx := context.Background()
		mustAppend(t, store, record("a", "u1", domain.TypeAutomated, "steps", "", 2, 100))
		mustAppend(t, store, record("b", "u2", domain.TypeAutomated, "steps", "", 2, 100))

		if err := store.ClearUser(ctx, "u1"); err != nil {
			t.Fatalf("%s: clear user: %v", name, err)
		}
		u1, _ := store.QueryAll(ctx, "u1")
		u2, _ := store.QueryAll(ctx, "u2")
		if len(u1) != 0 || len(u2) != 1 {
			t.Fatalf("%s: clear user scoped wrong: u1=%d u2=%d", name, len(u1), len(u2))
		}

		if err := store.ClearAll(ctx); err != nil {
			t.Fatalf("%s: clear all: %v", name, err)
		}
		u2, _ = store.QueryAll(ctx, "u2")
		if len(u2) != 0 {
			t.Fatalf("%s: clear all left records behind", name)
		}
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "tokens.db")
	store, err := out.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	mustAppend(t, store, record("a", "u1", domain.TypeAutomated, "steps", "", 2, 100))

	reopened, err := out.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	got, err := reopened.QueryAll(context.Background(), "u1")
	if err != nil {
		t.Fatalf("query reopened: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("record did not survive reopen: %+v", got)
	}
}

func mustAppend(t *testing.T, store ledgerout.Store, record domain.ScanRecord) {
	t.Helper()
	if err := store.Append(context.Background(), record); err != nil {
		t.Fatalf("append %s: %v", record.ID, err)
	}
}

package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	out "tokenhub/internal/modules/family/adapter/out"
	familydto "tokenhub/internal/modules/family/dto"
	"tokenhub/internal/modules/family/service"
	"tokenhub/internal/modules/family/usecase"
	apperrors "tokenhub/internal/platform/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newFamily(t *testing.T, now time.Time) *usecase.Interactor {
	t.Helper()
	store := out.NewFileSpaceStore(filepath.Join(t.TempDir(), "family.json"))
	return usecase.NewInteractor(service.NewFamilyService(fixedClock{now: now}, store))
}

func TestJoinThenCurrent(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	family := newFamily(t, now)
	ctx := context.Background()

	joined, err := family.Join(ctx, familydto.JoinInput{Name: "  smiths  ", HubAddr: "127.0.0.1:7420"})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if joined.Name != "smiths" || joined.JoinedAt != now.UnixMilli() {
		t.Fatalf("unexpected joined space: %+v", joined)
	}

	current, err := family.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Name != "smiths" || current.HubAddr != "127.0.0.1:7420" {
		t.Fatalf("unexpected current space: %+v", current)
	}
}

func TestJoinRequiresName(t *testing.T) {
	t.Parallel()
	family := newFamily(t, time.Now())

	_, err := family.Join(context.Background(), familydto.JoinInput{Name: "   "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeaveClearsSpace(t *testing.T) {
	t.Parallel()
	family := newFamily(t, time.Now())
	ctx := context.Background()

	if _, err := family.Join(ctx, familydto.JoinInput{Name: "smiths"}); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := family.Leave(ctx); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := family.Current(ctx); !errors.Is(err, apperrors.ErrNoFamilySpace) {
		t.Fatalf("expected ErrNoFamilySpace, got %v", err)
	}

	// Leaving twice is fine.
	if err := family.Leave(ctx); err != nil {
		t.Fatalf("second leave: %v", err)
	}
}

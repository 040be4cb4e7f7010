package domain_test

import (
	"testing"
	"time"

	"tokenhub/internal/modules/ledger/domain"
)

func TestValidateRejectsMixedFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		record domain.ScanRecord
		ok     bool
	}{
		{"automated", domain.ScanRecord{UserID: "u1", Type: domain.TypeAutomated, Category: "steps", Amount: 3}, true},
		{"mood", domain.ScanRecord{UserID: "u1", Type: domain.TypeMood, Mood: "Calm", Amount: 1}, true},
		{"automated with mood", domain.ScanRecord{UserID: "u1", Type: domain.TypeAutomated, Category: "steps", Mood: "Calm", Amount: 3}, false},
		{"mood with category", domain.ScanRecord{UserID: "u1", Type: domain.TypeMood, Mood: "Calm", Category: "sleep", Amount: 1}, false},
		{"mood amount above one", domain.ScanRecord{UserID: "u1", Type: domain.TypeMood, Mood: "Calm", Amount: 2}, false},
		{"zero amount", domain.ScanRecord{UserID: "u1", Type: domain.TypeAutomated, Category: "steps", Amount: 0}, false},
		{"unknown type", domain.ScanRecord{UserID: "u1", Type: "bonus", Amount: 1}, false},
		{"missing user", domain.ScanRecord{Type: domain.TypeMood, Mood: "Calm", Amount: 1}, false},
	}
	for _, tc := range cases {
		err := tc.record.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestDayWindowBounds(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
	window := domain.DayWindowAt(now)

	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local).UnixMilli()
	if window.Start != midnight {
		t.Fatalf("expected window start %d, got %d", midnight, window.Start)
	}
	if window.End != midnight+24*60*60*1000-1 {
		t.Fatalf("unexpected window end %d", window.End)
	}
	if !window.Contains(now.UnixMilli()) {
		t.Fatalf("window must contain its own instant")
	}
	if window.Contains(window.Start - 1) {
		t.Fatalf("window must exclude previous day")
	}
	if window.Contains(window.End + 1) {
		t.Fatalf("window must exclude next day")
	}
}

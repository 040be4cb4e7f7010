package domain

import (
	"fmt"
	"time"
)

const (
	TypeAutomated = "automated"
	TypeMood      = "mood"
)

// ScanRecord is one accepted token scan. Records are append-only: they are
// created once by a successful scan, never mutated, and removed only by the
// explicit clear operations.
type ScanRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Category  string `json:"category,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// Validate enforces the record invariant: exactly one of category/mood is
// set, matching the type, and mood scans always carry amount 1.
func (r ScanRecord) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	switch r.Type {
	case TypeAutomated:
		if r.Category == "" || r.Mood != "" {
			return fmt.Errorf("automated scan must set category and no mood")
		}
	case TypeMood:
		if r.Mood == "" || r.Category != "" {
			return fmt.Errorf("mood scan must set mood and no category")
		}
		if r.Amount != 1 {
			return fmt.Errorf("mood scan amount must be 1")
		}
	default:
		return fmt.Errorf("unknown scan type %q", r.Type)
	}
	return nil
}

// DayWindow is an inclusive epoch-millisecond range covering one local
// calendar day.
type DayWindow struct {
	Start int64
	End   int64
}

// DayWindowAt returns the local-day window containing the given instant:
// [startOfLocalDay, startOfLocalDay+24h-1ms].
func DayWindowAt(now time.Time) DayWindow {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
	return DayWindow{Start: start, End: start + 24*60*60*1000 - 1}
}

func (w DayWindow) Contains(ts int64) bool {
	return ts >= w.Start && ts <= w.End
}

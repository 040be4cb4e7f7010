package dto

type Document struct {
	ID        string
	UserID    string
	Type      string
	Category  string
	Mood      string
	Amount    int
	Timestamp int64
}

type LogScanInput struct {
	Space  string
	Record Document
}

type ClearUserInput struct {
	Space  string
	UserID string
}

// ClearTodayInput carries the same local-day boundary the ledger used, so
// local and remote clears agree on what "today" means.
type ClearTodayInput struct {
	Space       string
	UserID      string
	StartMillis int64
	EndMillis   int64
}

type ListInput struct {
	Space  string
	UserID string
}

package dto

type AppendInput struct {
	ID        string
	UserID    string
	Type      string
	Category  string
	Mood      string
	Amount    int
	Timestamp int64
}

type RecordOutput struct {
	ID        string
	UserID    string
	Type      string
	Category  string
	Mood      string
	Amount    int
	Timestamp int64
}

type HistoryInput struct {
	UserID string
}

type CountInput struct {
	UserID   string
	Category string
}

// ClearInput scopes a clear operation. Space carries the shared family space
// so the matching remote documents can be cleared as well; empty means local
// only.
type ClearInput struct {
	UserID string
	Space  string
}

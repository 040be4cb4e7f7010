package domain

// Document is the remote mirror shape of one accepted scan: the same field
// set as the local ledger record, stored under a per-user sub-path within a
// per-family space.
type Document struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Category  string `json:"category,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

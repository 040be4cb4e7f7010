package domain

// Space is the shared family space this device mirrors scans into.
type Space struct {
	Name     string `json:"name"`
	HubAddr  string `json:"hubAddr,omitempty"`
	JoinedAt int64  `json:"joinedAt"`
}

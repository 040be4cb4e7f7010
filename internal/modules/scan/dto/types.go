package dto

// TagRecord mirrors one NDEF record as read from a tag.
type TagRecord struct {
	TNF     byte
	Type    []byte
	Payload []byte
}

// Limits are the per-category caps the scan is checked against.
type Limits struct {
	Steps int
	Sleep int
}

type ProcessInput struct {
	UserID string
	// Space is the shared family space name; empty means no mirroring.
	Space   string
	Records []TagRecord
	// Message is a raw binary NDEF message, used when Records is empty.
	Message []byte
	Limits  Limits
}

type EncodeInput struct {
	JSON   string
	AsText bool
}

type ProcessOutput struct {
	// Found reports whether any record on the tag yielded a decision.
	Found    bool
	Accepted bool
	Message  string
	RecordID string
}

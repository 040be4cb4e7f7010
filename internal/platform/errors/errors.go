package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoFamilySpace    = errors.New("no family space joined")
	ErrNoHealthSnapshot = errors.New("no health snapshot for today")
	ErrHubUnconfigured  = errors.New("hub address is not configured")
)

package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns device-local time. Daily token windows follow the
// device's local calendar, matching the health-metric snapshots.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

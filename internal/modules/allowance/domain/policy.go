package domain

const (
	StepsPerToken        = 1000
	SleepMinutesPerToken = 60
)

// Allowance is the maximum redeemable automated-token count for today, per
// category. It is recomputed from the latest health snapshot on every
// request and never persisted; it is not a historical record.
type Allowance struct {
	Steps int
	Sleep int
}

func (a Allowance) Total() int {
	return a.Steps + a.Sleep
}

// Remaining subtracts already-redeemed counts, clamped at zero.
func (a Allowance) Remaining(usedSteps, usedSleep int) Allowance {
	return Allowance{
		Steps: clamp(a.Steps - usedSteps),
		Sleep: clamp(a.Sleep - usedSleep),
	}
}

// HealthSnapshot is today's metrics as supplied by the health data
// repository. Date is the local calendar day the snapshot belongs to, in
// 2006-01-02 form.
type HealthSnapshot struct {
	Steps        int    `json:"steps"`
	SleepMinutes int    `json:"sleepMinutes"`
	Date         string `json:"date"`
}

// StepsAllowance converts a step count into tokens: one per thousand steps.
func StepsAllowance(steps int) int {
	return clamp(steps / StepsPerToken)
}

// SleepAllowance converts slept minutes into tokens: one per full hour.
func SleepAllowance(minutes int) int {
	return clamp(minutes / SleepMinutesPerToken)
}

// Compute derives the full daily allowance from one snapshot. There is no
// heart-rate allowance: that category is rejected outright during scanning.
func Compute(snapshot HealthSnapshot) Allowance {
	return Allowance{
		Steps: StepsAllowance(snapshot.Steps),
		Sleep: SleepAllowance(snapshot.SleepMinutes),
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

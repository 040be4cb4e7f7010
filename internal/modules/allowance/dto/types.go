package dto

type SetHealthInput struct {
	UserID       string
	Steps        int
	SleepMinutes int
}

type SnapshotInput struct {
	UserID string
}

type HealthOutput struct {
	Steps        int
	SleepMinutes int
	Date         string
}

type ComputeInput struct {
	UserID string
}

type AllowanceOutput struct {
	Steps int
	Sleep int
}

type SummaryInput struct {
	UserID string
}

type SummaryOutput struct {
	Allowance      AllowanceOutput
	StepsUsed      int
	SleepUsed      int
	StepsRemaining int
	SleepRemaining int
}

package usecase

import (
	"context"

	"tokenhub/internal/modules/allowance/dto"
	"tokenhub/internal/modules/allowance/service"
	ledgerdto "tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
)

const (
	categorySteps = "steps"
	categorySleep = "sleep"
)

type Interactor struct {
	svc    *service.AllowanceService
	ledger ledgerin.Usecase
}

func NewInteractor(svc *service.AllowanceService, ledger ledgerin.Usecase) *Interactor {
	return &Interactor{svc: svc, ledger: ledger}
}

func (i *Interactor) SetToday(ctx context.Context, input dto.SetHealthInput) error {
	return i.svc.SetToday(ctx, input.UserID, input.Steps, input.SleepMinutes)
}

func (i *Interactor) Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.HealthOutput, error) {
	snapshot, err := i.svc.Snapshot(ctx, input.UserID)
	if err != nil {
		return dto.HealthOutput{}, err
	}
	return dto.HealthOutput{Steps: snapshot.Steps, SleepMinutes: snapshot.SleepMinutes, Date: snapshot.Date}, nil
}

func (i *Interactor) ComputeToday(ctx context.Context, input dto.ComputeInput) (dto.AllowanceOutput, error) {
	allowance, err := i.svc.ComputeToday(ctx, input.UserID)
	if err != nil {
		return dto.AllowanceOutput{}, err
	}
	return dto.AllowanceOutput{Steps: allowance.Steps, Sleep: allowance.Sleep}, nil
}

// Summary combines today's allowance with the counts already redeemed from
// the scan ledger.
func (i *Interactor) Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error) {
	allowance, err := i.svc.ComputeToday(ctx, input.UserID)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	stepsUsed, err := i.ledger.CountAutomatedToday(ctx, ledgerdto.CountInput{UserID: input.UserID, Category: categorySteps})
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	sleepUsed, err := i.ledger.CountAutomatedToday(ctx, ledgerdto.CountInput{UserID: input.UserID, Category: categorySleep})
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	remaining := allowance.Remaining(stepsUsed, sleepUsed)
	return dto.SummaryOutput{
		Allowance:      dto.AllowanceOutput{Steps: allowance.Steps, Sleep: allowance.Sleep},
		StepsUsed:      stepsUsed,
		SleepUsed:      sleepUsed,
		StepsRemaining: remaining.Steps,
		SleepRemaining: remaining.Sleep,
	}, nil
}

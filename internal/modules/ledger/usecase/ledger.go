package usecase

import (
	"context"

	"tokenhub/internal/modules/ledger/domain"
	"tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
	"tokenhub/internal/modules/ledger/service"
	mirrordto "tokenhub/internal/modules/mirror/dto"
	mirrorin "tokenhub/internal/modules/mirror/port/in"
)

type Interactor struct {
	svc    *service.LedgerService
	mirror mirrorin.Usecase
}

func NewInteractor(svc *service.LedgerService, mirror mirrorin.Usecase) ledgerin.Usecase {
	return &Interactor{svc: svc, mirror: mirror}
}

func (i *Interactor) Append(ctx context.Context, input dto.AppendInput) (dto.RecordOutput, error) {
	stored, err := i.svc.Append(ctx, domain.ScanRecord{
		ID:        input.ID,
		UserID:    input.UserID,
		Type:      input.Type,
		Category:  input.Category,
		Mood:      input.Mood,
		Amount:    input.Amount,
		Timestamp: input.Timestamp,
	})
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(stored), nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.RecordOutput, error) {
	records, err := i.svc.History(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toOutput(record))
	}
	return out, nil
}

func (i *Interactor) CountAutomatedToday(ctx context.Context, input dto.CountInput) (int, error) {
	return i.svc.CountAutomatedToday(ctx, input.UserID, input.Category)
}

func (i *Interactor) ClearAll(ctx context.Context) error {
	return i.svc.ClearAll(ctx)
}

func (i *Interactor) ClearUser(ctx context.Context, input dto.ClearInput) error {
	if err := i.svc.ClearUser(ctx, input.UserID); err != nil {
		return err
	}
	if input.Space != "" && i.mirror != nil {
		i.mirror.ClearUser(ctx, mirrordto.ClearUserInput{Space: input.Space, UserID: input.UserID})
	}
	return nil
}

func (i *Interactor) ClearToday(ctx context.Context, input dto.ClearInput) error {
	// Capture the boundary first so local and remote clears use the same day.
	window := i.svc.TodayWindow()
	if err := i.svc.ClearTodayUser(ctx, input.UserID, window); err != nil {
		return err
	}
	if input.Space != "" && i.mirror != nil {
		i.mirror.ClearToday(ctx, mirrordto.ClearTodayInput{
			Space:       input.Space,
			UserID:      input.UserID,
			StartMillis: window.Start,
			EndMillis:   window.End,
		})
	}
	return nil
}

func toOutput(record domain.ScanRecord) dto.RecordOutput {
	return dto.RecordOutput{
		ID:        record.ID,
		UserID:    record.UserID,
		Type:      record.Type,
		Category:  record.Category,
		Mood:      record.Mood,
		Amount:    record.Amount,
		Timestamp: record.Timestamp,
	}
}

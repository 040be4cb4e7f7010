package in

import (
	"context"

	"tokenhub/internal/modules/ledger/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) (dto.RecordOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.RecordOutput, error)
	CountAutomatedToday(ctx context.Context, input dto.CountInput) (int, error)
	ClearAll(ctx context.Context) error
	ClearUser(ctx context.Context, input dto.ClearInput) error
	ClearToday(ctx context.Context, input dto.ClearInput) error
}

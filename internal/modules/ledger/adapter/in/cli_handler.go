package in

import (
	"context"

	ledgerdto "tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
)

type CLIHandler struct {
	usecase ledgerin.Usecase
}

func NewCLIHandler(usecase ledgerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) History(ctx context.Context, userID string) ([]ledgerdto.RecordOutput, error) {
	return h.usecase.History(ctx, ledgerdto.HistoryInput{UserID: userID})
}

func (h CLIHandler) CountToday(ctx context.Context, userID, category string) (int, error) {
	return h.usecase.CountAutomatedToday(ctx, ledgerdto.CountInput{UserID: userID, Category: category})
}

func (h CLIHandler) ClearAll(ctx context.Context) error {
	return h.usecase.ClearAll(ctx)
}

func (h CLIHandler) ClearUser(ctx context.Context, userID, space string) error {
	return h.usecase.ClearUser(ctx, ledgerdto.ClearInput{UserID: userID, Space: space})
}

func (h CLIHandler) ClearToday(ctx context.Context, userID, space string) error {
	return h.usecase.ClearToday(ctx, ledgerdto.ClearInput{UserID: userID, Space: space})
}

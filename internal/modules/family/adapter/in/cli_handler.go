package in

import (
	"context"

	familydto "tokenhub/internal/modules/family/dto"
	familyin "tokenhub/internal/modules/family/port/in"
)

type CLIHandler struct {
	usecase familyin.Usecase
}

func NewCLIHandler(usecase familyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Join(ctx context.Context, name, hubAddr string) (familydto.SpaceOutput, error) {
	return h.usecase.Join(ctx, familydto.JoinInput{Name: name, HubAddr: hubAddr})
}

func (h CLIHandler) Leave(ctx context.Context) error {
	return h.usecase.Leave(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (familydto.SpaceOutput, error) {
	return h.usecase.Current(ctx)
}

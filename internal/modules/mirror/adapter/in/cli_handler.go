package in

import (
	"context"

	mirrordto "tokenhub/internal/modules/mirror/dto"
	mirrorin "tokenhub/internal/modules/mirror/port/in"
)

type CLIHandler struct {
	usecase mirrorin.Usecase
}

func NewCLIHandler(usecase mirrorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Serve(ctx context.Context, addr string) error {
	return h.usecase.Serve(ctx, addr)
}

func (h CLIHandler) List(ctx context.Context, space, userID string) ([]mirrordto.Document, error) {
	return h.usecase.ListRemote(ctx, mirrordto.ListInput{Space: space, UserID: userID})
}

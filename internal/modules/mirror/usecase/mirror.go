package usecase

import (
	"context"

	"tokenhub/internal/modules/mirror/domain"
	"tokenhub/internal/modules/mirror/dto"
	mirrorin "tokenhub/internal/modules/mirror/port/in"
	"tokenhub/internal/modules/mirror/service"
)

type Interactor struct {
	svc *service.MirrorService
}

func NewInteractor(svc *service.MirrorService) mirrorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) LogScan(ctx context.Context, input dto.LogScanInput) {
	i.svc.LogScan(ctx, input.Space, toDomain(input.Record))
}

func (i *Interactor) ClearUser(ctx context.Context, input dto.ClearUserInput) {
	i.svc.ClearUser(ctx, input.Space, input.UserID)
}

func (i *Interactor) ClearToday(ctx context.Context, input dto.ClearTodayInput) {
	i.svc.ClearToday(ctx, input.Space, input.UserID, input.StartMillis, input.EndMillis)
}

func (i *Interactor) Serve(ctx context.Context, addr string) error {
	return i.svc.Serve(ctx, addr)
}

func (i *Interactor) ListRemote(ctx context.Context, input dto.ListInput) ([]dto.Document, error) {
	docs, err := i.svc.ListRemote(ctx, input.Space, input.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromDomain(doc))
	}
	return out, nil
}

func toDomain(d dto.Document) domain.Document {
	return domain.Document{ID: d.ID, UserID: d.UserID, Type: d.Type, Category: d.Category, Mood: d.Mood, Amount: d.Amount, Timestamp: d.Timestamp}
}

func fromDomain(d domain.Document) dto.Document {
	return dto.Document{ID: d.ID, UserID: d.UserID, Type: d.Type, Category: d.Category, Mood: d.Mood, Amount: d.Amount, Timestamp: d.Timestamp}
}

package usecase

import (
	"context"

	"tokenhub/internal/modules/family/dto"
	"tokenhub/internal/modules/family/service"
)

type Interactor struct {
	svc *service.FamilyService
}

func NewInteractor(svc *service.FamilyService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Join(ctx context.Context, input dto.JoinInput) (dto.SpaceOutput, error) {
	space, err := i.svc.Join(ctx, input.Name, input.HubAddr)
	if err != nil {
		return dto.SpaceOutput{}, err
	}
	return dto.SpaceOutput{Name: space.Name, HubAddr: space.HubAddr, JoinedAt: space.JoinedAt}, nil
}

func (i *Interactor) Leave(ctx context.Context) error {
	return i.svc.Leave(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SpaceOutput, error) {
	space, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SpaceOutput{}, err
	}
	return dto.SpaceOutput{Name: space.Name, HubAddr: space.HubAddr, JoinedAt: space.JoinedAt}, nil
}

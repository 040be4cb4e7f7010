package service

import (
	"context"
	"fmt"
	"strings"

	"tokenhub/internal/modules/family/domain"
	"tokenhub/internal/modules/family/port/out"
	"tokenhub/internal/platform/clock"
	apperrors "tokenhub/internal/platform/errors"
)

type FamilyService struct {
	clock clock.Clock
	store out.SpaceStore
}

func NewFamilyService(clk clock.Clock, store out.SpaceStore) *FamilyService {
	return &FamilyService{clock: clk, store: store}
}

func (s *FamilyService) Join(ctx context.Context, name, hubAddr string) (domain.Space, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Space{}, fmt.Errorf("%w: space name is required", apperrors.ErrInvalidInput)
	}
	space := domain.Space{
		Name:     name,
		HubAddr:  strings.TrimSpace(hubAddr),
		JoinedAt: s.clock.Now().UnixMilli(),
	}
	if err := s.store.Save(ctx, space); err != nil {
		return domain.Space{}, fmt.Errorf("persist family space: %w", err)
	}
	return space, nil
}

func (s *FamilyService) Leave(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *FamilyService) Current(ctx context.Context) (domain.Space, error) {
	return s.store.Load(ctx)
}

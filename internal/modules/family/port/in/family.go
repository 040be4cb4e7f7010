package in

import (
	"context"

	"tokenhub/internal/modules/family/dto"
)

type Usecase interface {
	Join(ctx context.Context, input dto.JoinInput) (dto.SpaceOutput, error)
	Leave(ctx context.Context) error
	// Current returns the joined space, or apperrors.ErrNoFamilySpace.
	Current(ctx context.Context) (dto.SpaceOutput, error)
}

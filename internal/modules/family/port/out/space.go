package out

import (
	"context"

	"tokenhub/internal/modules/family/domain"
)

// SpaceStore persists the one space this device has joined. Load returns
// apperrors.ErrNoFamilySpace when the device has not joined any.
type SpaceStore interface {
	Save(ctx context.Context, space domain.Space) error
	Load(ctx context.Context) (domain.Space, error)
	Clear(ctx context.Context) error
}

package out

import (
	"context"

	"tokenhub/internal/modules/allowance/domain"
)

// HealthStore persists one health snapshot per user. Load returns
// apperrors.ErrNoHealthSnapshot when the user has never recorded one.
type HealthStore interface {
	Save(ctx context.Context, userID string, snapshot domain.HealthSnapshot) error
	Load(ctx context.Context, userID string) (domain.HealthSnapshot, error)
}

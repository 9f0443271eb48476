package repository

import (
	"context"

	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
	"github.com/sidjay999/Secretsanta/internal/models"
)

// unconfiguredGroupRepo is the explicit "store not configured" variant of
// GroupRepository. Every consuming operation sees a SERVICE_UNAVAILABLE
// error through its own return value instead of a nil-client guard check.
type unconfiguredGroupRepo struct{}

func NewUnconfiguredGroupRepository() GroupRepository {
	return unconfiguredGroupRepo{}
}

func (unconfiguredGroupRepo) CreateGroup(ctx context.Context, group *models.Group, overwrite bool) *apperrors.AppError {
	return unavailable()
}

func (unconfiguredGroupRepo) GetGroup(ctx context.Context, groupID string) (*models.Group, *apperrors.AppError) {
	return nil, unavailable()
}

func (unconfiguredGroupRepo) ListGroupIDs(ctx context.Context) ([]string, *apperrors.AppError) {
	return nil, unavailable()
}

func (unconfiguredGroupRepo) MarkRevealed(ctx context.Context, groupID, name string) *apperrors.AppError {
	return unavailable()
}

func unavailable() *apperrors.AppError {
	return apperrors.New(apperrors.CodeServiceUnavailable, "group store is not configured")
}

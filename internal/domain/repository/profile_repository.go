package repository

import (
	"context"

	"apartio/internal/domain/entity"
)

// ProfileRepository persists the singleton profile record. Get returns
// NOT_FOUND until the first Save.
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}

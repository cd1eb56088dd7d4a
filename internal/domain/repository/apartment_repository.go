package repository

import (
	"context"

	"apartio/internal/domain/entity"
)

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *entity.Apartment) error
	GetByID(ctx context.Context, id string) (*entity.Apartment, error)
	// List applies equality filters per field; the "features" key is matched
	// by set membership against the listing's feature tags.
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Apartment, error)
	Update(ctx context.Context, apartment *entity.Apartment) error
	Delete(ctx context.Context, id string) error
}

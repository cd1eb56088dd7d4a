package repository

import (
	"context"

	"apartio/internal/domain/entity"
)

type GalleryRepository interface {
	Create(ctx context.Context, photo *entity.GalleryPhoto) error
	GetByID(ctx context.Context, id string) (*entity.GalleryPhoto, error)
	List(ctx context.Context) ([]*entity.GalleryPhoto, error)
	Update(ctx context.Context, photo *entity.GalleryPhoto) error
	Delete(ctx context.Context, id string) error
}

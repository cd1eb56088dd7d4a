package repository

import (
	"context"

	"apartio/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	GetByID(ctx context.Context, id string) (*entity.ContactMessage, error)
	List(ctx context.Context) ([]*entity.ContactMessage, error)
	Update(ctx context.Context, message *entity.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

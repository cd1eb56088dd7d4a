package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
	"apartio/pkg/errors"
)

type firestoreGalleryRepository struct {
	client *firestore.Client
}

func NewFirestoreGalleryRepository(client *firestore.Client) repository.GalleryRepository {
	return &firestoreGalleryRepository{
		client: client,
	}
}

func (r *firestoreGalleryRepository) Create(ctx context.Context, photo *entity.GalleryPhoto) error {
	if photo.ID == "" {
		doc := r.client.Collection("gallery").NewDoc()
		photo.ID = doc.ID
	}

	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("gallery").Doc(photo.ID).Set(ctx, photo)
	if err != nil {
		return errors.Internal("Failed to create gallery photo", err)
	}

	return nil
}

func (r *firestoreGalleryRepository) GetByID(ctx context.Context, id string) (*entity.GalleryPhoto, error) {
	if id == "" {
		return nil, errors.NotFound("Photo", nil)
	}

	doc, err := r.client.Collection("gallery").Doc(id).Get(ctx)
	if err != nil {
		if code := status.Code(err); code == codes.NotFound || code == codes.InvalidArgument {
			return nil, errors.NotFound("Photo", err)
		}
		return nil, errors.Internal("Failed to get gallery photo", err)
	}

	var photo entity.GalleryPhoto
	if err := doc.DataTo(&photo); err != nil {
		return nil, errors.Internal("Failed to parse gallery photo data", err)
	}

	return &photo, nil
}

func (r *firestoreGalleryRepository) List(ctx context.Context) ([]*entity.GalleryPhoto, error) {
	iter := r.client.Collection("gallery").OrderBy("createdAt", firestore.Desc).Documents(ctx)
	photos := []*entity.GalleryPhoto{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate gallery photos", err)
		}

		var photo entity.GalleryPhoto
		if err := doc.DataTo(&photo); err != nil {
			return nil, errors.Internal("Failed to parse gallery photo data", err)
		}
		photos = append(photos, &photo)
	}

	return photos, nil
}

func (r *firestoreGalleryRepository) Update(ctx context.Context, photo *entity.GalleryPhoto) error {
	_, err := r.client.Collection("gallery").Doc(photo.ID).Set(ctx, photo)
	if err != nil {
		return errors.Internal("Failed to update gallery photo", err)
	}

	return nil
}

func (r *firestoreGalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gallery").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gallery photo", err)
	}

	return nil
}

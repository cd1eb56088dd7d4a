package usecase

import (
	"context"
	"io"
	"time"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
	"apartio/internal/domain/service"
	"apartio/pkg/logger"
)

type GalleryUseCase struct {
	galleryRepo  repository.GalleryRepository
	mediaStorage service.MediaStorage
}

func NewGalleryUseCase(galleryRepo repository.GalleryRepository, mediaStorage service.MediaStorage) *GalleryUseCase {
	return &GalleryUseCase{
		galleryRepo:  galleryRepo,
		mediaStorage: mediaStorage,
	}
}

func (uc *GalleryUseCase) ListPhotos(ctx context.Context) ([]*entity.GalleryPhoto, error) {
	return uc.galleryRepo.List(ctx)
}

func (uc *GalleryUseCase) UploadPhoto(ctx context.Context, file io.Reader, contentType, caption string) (*entity.GalleryPhoto, error) {
	result, err := uc.mediaStorage.Upload(ctx, file, contentType, "gallery")
	if err != nil {
		return nil, err
	}

	photo := &entity.GalleryPhoto{
		ImageURL:  result.URL,
		StorageID: result.StorageID,
		Caption:   caption,
		CreatedAt: time.Now(),
	}

	if err := uc.galleryRepo.Create(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

func (uc *GalleryUseCase) UpdateCaption(ctx context.Context, id, caption string) (*entity.GalleryPhoto, error) {
	photo, err := uc.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photo.Caption = caption

	if err := uc.galleryRepo.Update(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// DeletePhoto releases the stored asset and removes the record. The two
// deletes are not transactional: a failed asset release is logged and the
// record is removed anyway, so the gallery never keeps dangling entries.
func (uc *GalleryUseCase) DeletePhoto(ctx context.Context, id string) error {
	photo, err := uc.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if photo.StorageID != "" {
		if err := uc.mediaStorage.Delete(ctx, photo.StorageID); err != nil {
			logger.Warn("Failed to release gallery asset %s: %v", photo.StorageID, err)
		}
	}

	return uc.galleryRepo.Delete(ctx, id)
}

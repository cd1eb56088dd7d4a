package usecase

import (
	"context"
	"io"
	"time"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
	"apartio/internal/domain/service"
	"apartio/pkg/errors"
	"apartio/pkg/logger"
)

const placeholderBio = "Your bio here..."

type ProfileUseCase struct {
	profileRepo  repository.ProfileRepository
	mediaStorage service.MediaStorage
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, mediaStorage service.MediaStorage) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:  profileRepo,
		mediaStorage: mediaStorage,
	}
}

// GetProfile returns the singleton record, creating it with placeholder
// values on first read. Legacy records written before the second biography
// field existed are migrated in place by copying the first into the second.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		profile = &entity.Profile{
			Name:      "Your Name",
			Bio:       placeholderBio,
			BioEn:     placeholderBio,
			Email:     "your@email.com",
			Phone:     "+1234567890",
			UpdatedAt: time.Now(),
		}
		if err := uc.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	if profile.BioEn == "" {
		if profile.Bio != "" {
			profile.BioEn = profile.Bio
		} else {
			profile.BioEn = placeholderBio
		}
		if err := uc.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

type UpdateProfileInput struct {
	Name  string
	Bio   string
	BioEn string
	Email string
	Phone string
}

func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.Profile, error) {
	profile, err := uc.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Email = input.Email
	profile.Phone = input.Phone

	// Blank biographies fall back to the placeholder rather than an empty
	// string, matching the lazily created record.
	profile.Bio = input.Bio
	if profile.Bio == "" {
		profile.Bio = placeholderBio
	}
	profile.BioEn = input.BioEn
	if profile.BioEn == "" {
		profile.BioEn = placeholderBio
	}

	profile.UpdatedAt = time.Now()

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ReplacePhoto uploads the new portrait and releases the previous asset.
// The old object is destroyed best-effort before the record is updated.
func (uc *ProfileUseCase) ReplacePhoto(ctx context.Context, file io.Reader, contentType string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if profile.PhotoStorageID != "" {
		if err := uc.mediaStorage.Delete(ctx, profile.PhotoStorageID); err != nil {
			logger.Warn("Failed to release previous profile photo %s: %v", profile.PhotoStorageID, err)
		}
	}

	result, err := uc.mediaStorage.Upload(ctx, file, contentType, "profile")
	if err != nil {
		return nil, err
	}

	profile.Photo = result.URL
	profile.PhotoStorageID = result.StorageID
	profile.UpdatedAt = time.Now()

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

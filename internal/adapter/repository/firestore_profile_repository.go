package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
	"apartio/pkg/errors"
)

// The profile is stored under a fixed document ID so there is exactly one
// record to read, ever. The lazy-create logic lives in the use case.
const profileDocID = "owner"

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	doc, err := r.client.Collection("profile").Doc(profileDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	profile.ID = profileDocID

	_, err := r.client.Collection("profile").Doc(profileDocID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}

	return nil
}

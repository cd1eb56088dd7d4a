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

type firestoreApartmentRepository struct {
	client *firestore.Client
}

func NewFirestoreApartmentRepository(client *firestore.Client) repository.ApartmentRepository {
	return &firestoreApartmentRepository{
		client: client,
	}
}

func (r *firestoreApartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	if apartment.ID == "" {
		doc := r.client.Collection("apartments").NewDoc()
		apartment.ID = doc.ID
	}

	if apartment.CreatedAt.IsZero() {
		apartment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("apartments").Doc(apartment.ID).Set(ctx, apartment)
	if err != nil {
		return errors.Internal("Failed to create apartment", err)
	}

	return nil
}

func (r *firestoreApartmentRepository) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	if id == "" {
		return nil, errors.NotFound("Apartment", nil)
	}

	doc, err := r.client.Collection("apartments").Doc(id).Get(ctx)
	if err != nil {
		// Malformed identifiers surface as InvalidArgument; the contract
		// normalizes them to 404 like a missing document.
		if code := status.Code(err); code == codes.NotFound || code == codes.InvalidArgument {
			return nil, errors.NotFound("Apartment", err)
		}
		return nil, errors.Internal("Failed to get apartment", err)
	}

	var apartment entity.Apartment
	if err := doc.DataTo(&apartment); err != nil {
		return nil, errors.Internal("Failed to parse apartment data", err)
	}

	return &apartment, nil
}

func (r *firestoreApartmentRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Apartment, error) {
	query := r.client.Collection("apartments").Query

	for key, value := range filter {
		if key == "features" {
			query = query.Where(key, "array-contains-any", value)
			continue
		}
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	apartments := []*entity.Apartment{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate apartments", err)
		}

		var apartment entity.Apartment
		if err := doc.DataTo(&apartment); err != nil {
			return nil, errors.Internal("Failed to parse apartment data", err)
		}
		apartments = append(apartments, &apartment)
	}

	return apartments, nil
}

func (r *firestoreApartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	_, err := r.client.Collection("apartments").Doc(apartment.ID).Set(ctx, apartment)
	if err != nil {
		return errors.Internal("Failed to update apartment", err)
	}

	return nil
}

func (r *firestoreApartmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("apartments").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete apartment", err)
	}

	return nil
}

package usecase

import (
	"context"
	"time"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
)

type ApartmentUseCase struct {
	apartmentRepo repository.ApartmentRepository
}

func NewApartmentUseCase(apartmentRepo repository.ApartmentRepository) *ApartmentUseCase {
	return &ApartmentUseCase{
		apartmentRepo: apartmentRepo,
	}
}

type CreateApartmentInput struct {
	Title         string
	Description   string
	Price         float64
	Status        string
	Type          string
	Images        []entity.ImageRef
	Location      string
	Rooms         int
	Area          float64
	Floor         int
	BuiltYear     int
	Features      []string
	Deposit       float64
	Utilities     float64
	AvailableFrom *time.Time
	Contact       entity.ApartmentContact
}

// UpdateApartmentInput carries only the fields the caller wants to change.
// Nil pointers leave the stored value untouched (shallow merge, never a full
// replace).
type UpdateApartmentInput struct {
	Title         *string
	Description   *string
	Price         *float64
	Status        *string
	Type          *string
	Images        *[]entity.ImageRef
	Location      *string
	Rooms         *int
	Area          *float64
	Floor         *int
	BuiltYear     *int
	Features      *[]string
	Deposit       *float64
	Utilities     *float64
	AvailableFrom *time.Time
	Contact       *entity.ApartmentContact
}

type ListApartmentsInput struct {
	Status   string
	Type     string
	Rooms    *int
	Features []string
}

func (uc *ApartmentUseCase) ListApartments(ctx context.Context, input ListApartmentsInput) ([]*entity.Apartment, error) {
	filter := make(map[string]interface{})

	if input.Status != "" {
		filter["status"] = input.Status
	}
	if input.Type != "" {
		filter["type"] = input.Type
	}
	if input.Rooms != nil {
		filter["rooms"] = *input.Rooms
	}
	if len(input.Features) > 0 {
		filter["features"] = input.Features
	}

	return uc.apartmentRepo.List(ctx, filter)
}

func (uc *ApartmentUseCase) GetApartment(ctx context.Context, id string) (*entity.Apartment, error) {
	return uc.apartmentRepo.GetByID(ctx, id)
}

func (uc *ApartmentUseCase) CreateApartment(ctx context.Context, input CreateApartmentInput) (*entity.Apartment, error) {
	status := input.Status
	if status == "" {
		status = entity.StatusAvailable
	}

	apartment := &entity.Apartment{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		Status:        status,
		Type:          input.Type,
		Images:        input.Images,
		Location:      input.Location,
		Rooms:         input.Rooms,
		Area:          input.Area,
		Floor:         input.Floor,
		BuiltYear:     input.BuiltYear,
		Features:      dedupeFeatures(input.Features),
		Deposit:       input.Deposit,
		Utilities:     input.Utilities,
		AvailableFrom: input.AvailableFrom,
		Contact:       input.Contact,
		CreatedAt:     time.Now(),
	}

	if err := uc.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, err
	}

	return apartment, nil
}

func (uc *ApartmentUseCase) UpdateApartment(ctx context.Context, id string, input UpdateApartmentInput) (*entity.Apartment, error) {
	apartment, err := uc.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		apartment.Title = *input.Title
	}
	if input.Description != nil {
		apartment.Description = *input.Description
	}
	if input.Price != nil {
		apartment.Price = *input.Price
	}
	if input.Status != nil {
		apartment.Status = *input.Status
	}
	if input.Type != nil {
		apartment.Type = *input.Type
	}
	if input.Images != nil {
		apartment.Images = *input.Images
	}
	if input.Location != nil {
		apartment.Location = *input.Location
	}
	if input.Rooms != nil {
		apartment.Rooms = *input.Rooms
	}
	if input.Area != nil {
		apartment.Area = *input.Area
	}
	if input.Floor != nil {
		apartment.Floor = *input.Floor
	}
	if input.BuiltYear != nil {
		apartment.BuiltYear = *input.BuiltYear
	}
	if input.Features != nil {
		apartment.Features = dedupeFeatures(*input.Features)
	}
	if input.Deposit != nil {
		apartment.Deposit = *input.Deposit
	}
	if input.Utilities != nil {
		apartment.Utilities = *input.Utilities
	}
	if input.AvailableFrom != nil {
		apartment.AvailableFrom = input.AvailableFrom
	}
	if input.Contact != nil {
		apartment.Contact = *input.Contact
	}

	if err := uc.apartmentRepo.Update(ctx, apartment); err != nil {
		return nil, err
	}

	return apartment, nil
}

func (uc *ApartmentUseCase) DeleteApartment(ctx context.Context, id string) error {
	if _, err := uc.apartmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.apartmentRepo.Delete(ctx, id)
}

// Feature tags form a set: duplicates are dropped, first occurrence wins.
func dedupeFeatures(features []string) []string {
	if features == nil {
		return nil
	}

	seen := make(map[string]bool, len(features))
	result := make([]string, 0, len(features))
	for _, f := range features {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		result = append(result, f)
	}

	return result
}

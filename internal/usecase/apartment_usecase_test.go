package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartio/internal/domain/entity"
	"apartio/pkg/errors"
)

func TestCreateApartmentDefaultsStatus(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())

	apartment, err := uc.CreateApartment(context.Background(), CreateApartmentInput{
		Title:       "Loft",
		Description: "Bright loft downtown",
		Price:       900,
		Type:        entity.TypeRent,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, apartment.ID)
	assert.Equal(t, entity.StatusAvailable, apartment.Status)
	assert.False(t, apartment.CreatedAt.IsZero())
}

func TestCreateApartmentDedupesFeatures(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())

	apartment, err := uc.CreateApartment(context.Background(), CreateApartmentInput{
		Title:       "Cabin",
		Description: "Forest cabin",
		Price:       500,
		Type:        entity.TypeRent,
		Features:    []string{"sauna", "balcony", "sauna", "", "balcony"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"sauna", "balcony"}, apartment.Features)
}

func TestListApartmentsFilterByType(t *testing.T) {
	repo := newFakeApartmentRepo()
	uc := NewApartmentUseCase(repo)
	ctx := context.Background()

	loft, err := uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Loft",
		Description: "Bright loft downtown",
		Price:       900,
		Type:        entity.TypeRent,
		Status:      entity.StatusAvailable,
	})
	require.NoError(t, err)

	_, err = uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Villa",
		Description: "Seaside villa",
		Price:       250000,
		Type:        entity.TypeSale,
	})
	require.NoError(t, err)

	rentals, err := uc.ListApartments(ctx, ListApartmentsInput{Type: entity.TypeRent})
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, loft.ID, rentals[0].ID)

	sales, err := uc.ListApartments(ctx, ListApartmentsInput{Type: entity.TypeSale})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.NotEqual(t, loft.ID, sales[0].ID)
}

func TestListApartmentsFilterByFeatures(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())
	ctx := context.Background()

	withSauna, err := uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Spa flat",
		Description: "Flat with sauna",
		Price:       1200,
		Type:        entity.TypeRent,
		Features:    []string{"sauna", "balcony"},
	})
	require.NoError(t, err)

	_, err = uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Plain flat",
		Description: "No extras",
		Price:       700,
		Type:        entity.TypeRent,
	})
	require.NoError(t, err)

	matches, err := uc.ListApartments(ctx, ListApartmentsInput{Features: []string{"sauna", "autopark"}})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, withSauna.ID, matches[0].ID)
}

func TestUpdateApartmentShallowMerge(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())
	ctx := context.Background()

	created, err := uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Loft",
		Description: "Bright loft downtown",
		Price:       900,
		Type:        entity.TypeRent,
		Status:      entity.StatusAvailable,
	})
	require.NoError(t, err)

	sold := entity.StatusSold
	updated, err := uc.UpdateApartment(ctx, created.ID, UpdateApartmentInput{Status: &sold})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSold, updated.Status)
	assert.Equal(t, "Loft", updated.Title, "unspecified fields keep their prior values")
	assert.Equal(t, 900.0, updated.Price)
	assert.Equal(t, entity.TypeRent, updated.Type)

	fetched, err := uc.GetApartment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSold, fetched.Status)
	assert.Equal(t, "Loft", fetched.Title)
}

func TestUpdateApartmentNotFound(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())

	title := "New title"
	_, err := uc.UpdateApartment(context.Background(), "missing", UpdateApartmentInput{Title: &title})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteApartment(t *testing.T) {
	uc := NewApartmentUseCase(newFakeApartmentRepo())
	ctx := context.Background()

	created, err := uc.CreateApartment(ctx, CreateApartmentInput{
		Title:       "Loft",
		Description: "Bright loft downtown",
		Price:       900,
		Type:        entity.TypeRent,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteApartment(ctx, created.ID))

	_, err = uc.GetApartment(ctx, created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.True(t, errors.Is(uc.DeleteApartment(ctx, created.ID), "NOT_FOUND"))
}

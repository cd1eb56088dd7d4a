package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartio/internal/adapter/api"
	"apartio/internal/domain/entity"
	"apartio/internal/usecase"
	"apartio/pkg/errors"
)

type memApartmentRepo struct {
	seq   int
	items map[string]*entity.Apartment
	order []string
}

func (r *memApartmentRepo) Create(ctx context.Context, apartment *entity.Apartment) error {
	if apartment.ID == "" {
		r.seq++
		apartment.ID = fmt.Sprintf("apt-%d", r.seq)
	}
	copied := *apartment
	r.items[apartment.ID] = &copied
	r.order = append(r.order, apartment.ID)
	return nil
}

func (r *memApartmentRepo) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	apartment, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Apartment", nil)
	}
	copied := *apartment
	return &copied, nil
}

func (r *memApartmentRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Apartment, error) {
	result := []*entity.Apartment{}
	for _, id := range r.order {
		apartment := r.items[id]
		if status, ok := filter["status"]; ok && apartment.Status != status {
			continue
		}
		if saleType, ok := filter["type"]; ok && apartment.Type != saleType {
			continue
		}
		if rooms, ok := filter["rooms"]; ok && apartment.Rooms != rooms {
			continue
		}
		copied := *apartment
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memApartmentRepo) Update(ctx context.Context, apartment *entity.Apartment) error {
	copied := *apartment
	r.items[apartment.ID] = &copied
	return nil
}

func (r *memApartmentRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func newApartmentTestServer() *echo.Echo {
	repo := &memApartmentRepo{items: make(map[string]*entity.Apartment)}
	h := NewApartmentHandler(usecase.NewApartmentUseCase(repo))

	e := echo.New()
	e.Validator = api.NewValidator()

	e.GET("/listings", h.ListApartments)
	e.GET("/listings/:id", h.GetApartment)
	e.POST("/listings", h.CreateApartment)
	e.PUT("/listings/:id", h.UpdateApartment)
	e.DELETE("/listings/:id", h.DeleteApartment)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateApartmentValidation(t *testing.T) {
	e := newApartmentTestServer()

	rec := doJSON(e, http.MethodPost, "/listings", `{"description":"No title","price":100,"type":"rent"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")

	rec = doJSON(e, http.MethodPost, "/listings", `{"title":"X","description":"Bad type","price":100,"type":"lease"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "type must be one of")
}

func TestCreateAndFilterListings(t *testing.T) {
	e := newApartmentTestServer()

	rec := doJSON(e, http.MethodPost, "/listings", `{"title":"Loft","description":"Bright loft","price":900,"type":"rent","status":"available"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/listings", `{"title":"Villa","description":"Seaside","price":250000,"type":"sale"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/listings?type=rent", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rentals []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rentals))
	require.Len(t, rentals, 1)
	assert.Equal(t, "Loft", rentals[0]["title"])

	rec = doJSON(e, http.MethodGet, "/listings?type=sale", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sales []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	require.Len(t, sales, 1)
	assert.Equal(t, "Villa", sales[0]["title"])
}

func TestPartialUpdateKeepsUnspecifiedFields(t *testing.T) {
	e := newApartmentTestServer()

	rec := doJSON(e, http.MethodPost, "/listings", `{"title":"Loft","description":"Bright loft","price":900,"type":"rent"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"].(string)

	rec = doJSON(e, http.MethodPut, "/listings/"+id, `{"status":"sold"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/listings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "sold", fetched["status"])
	assert.Equal(t, "Loft", fetched["title"])
	assert.Equal(t, 900.0, fetched["price"])
}

func TestGetMissingListingReturns404(t *testing.T) {
	e := newApartmentTestServer()

	rec := doJSON(e, http.MethodGet, "/listings/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestDeleteListing(t *testing.T) {
	e := newApartmentTestServer()

	rec := doJSON(e, http.MethodPost, "/listings", `{"title":"Loft","description":"Bright loft","price":900,"type":"rent"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"].(string)

	rec = doJSON(e, http.MethodDelete, "/listings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(e, http.MethodGet, "/listings/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

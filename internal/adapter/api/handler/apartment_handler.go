package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"apartio/internal/domain/entity"
	"apartio/internal/usecase"
	"apartio/pkg/response"
)

type ApartmentHandler struct {
	apartmentUseCase *usecase.ApartmentUseCase
}

func NewApartmentHandler(apartmentUseCase *usecase.ApartmentUseCase) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentUseCase: apartmentUseCase,
	}
}

type imageRefRequest struct {
	URL       string `json:"url" validate:"required"`
	StorageID string `json:"storageId"`
}

type apartmentContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Whatsapp string `json:"whatsapp"`
}

type createApartmentRequest struct {
	Title         string                   `json:"title" validate:"required"`
	Description   string                   `json:"description" validate:"required"`
	Price         float64                  `json:"price" validate:"required,gte=0"`
	Status        string                   `json:"status" validate:"omitempty,oneof=available rented sold"`
	Type          string                   `json:"type" validate:"required,oneof=rent sale"`
	Images        []imageRefRequest        `json:"images"`
	Location      string                   `json:"location"`
	Rooms         int                      `json:"rooms" validate:"gte=0"`
	Area          float64                  `json:"area" validate:"gte=0"`
	Floor         int                      `json:"floor"`
	BuiltYear     int                      `json:"builtYear" validate:"gte=0"`
	Features      []string                 `json:"features"`
	Deposit       float64                  `json:"deposit" validate:"gte=0"`
	Utilities     float64                  `json:"utilities" validate:"gte=0"`
	AvailableFrom *time.Time               `json:"availableFrom"`
	Contact       *apartmentContactRequest `json:"contact"`
}

type updateApartmentRequest struct {
	Title         *string                  `json:"title"`
	Description   *string                  `json:"description"`
	Price         *float64                 `json:"price" validate:"omitempty,gte=0"`
	Status        *string                  `json:"status" validate:"omitempty,oneof=available rented sold"`
	Type          *string                  `json:"type" validate:"omitempty,oneof=rent sale"`
	Images        *[]imageRefRequest       `json:"images"`
	Location      *string                  `json:"location"`
	Rooms         *int                     `json:"rooms" validate:"omitempty,gte=0"`
	Area          *float64                 `json:"area" validate:"omitempty,gte=0"`
	Floor         *int                     `json:"floor"`
	BuiltYear     *int                     `json:"builtYear" validate:"omitempty,gte=0"`
	Features      *[]string                `json:"features"`
	Deposit       *float64                 `json:"deposit" validate:"omitempty,gte=0"`
	Utilities     *float64                 `json:"utilities" validate:"omitempty,gte=0"`
	AvailableFrom *time.Time               `json:"availableFrom"`
	Contact       *apartmentContactRequest `json:"contact"`
}

func (h *ApartmentHandler) ListApartments(c echo.Context) error {
	input := usecase.ListApartmentsInput{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
	}

	// A non-numeric rooms value is ignored rather than rejected, keeping the
	// listing page permissive about stray query parameters.
	if roomsParam := c.QueryParam("rooms"); roomsParam != "" {
		if rooms, err := strconv.Atoi(roomsParam); err == nil && rooms >= 0 {
			input.Rooms = &rooms
		}
	}

	if featuresParam := c.QueryParam("features"); featuresParam != "" {
		for _, f := range strings.Split(featuresParam, ",") {
			if f = strings.TrimSpace(f); f != "" {
				input.Features = append(input.Features, f)
			}
		}
	}

	apartments, err := h.apartmentUseCase.ListApartments(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apartments)
}

func (h *ApartmentHandler) GetApartment(c echo.Context) error {
	apartment, err := h.apartmentUseCase.GetApartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apartment)
}

func (h *ApartmentHandler) CreateApartment(c echo.Context) error {
	var req createApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	apartment, err := h.apartmentUseCase.CreateApartment(c.Request().Context(), usecase.CreateApartmentInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Status:        req.Status,
		Type:          req.Type,
		Images:        toImageRefs(req.Images),
		Location:      req.Location,
		Rooms:         req.Rooms,
		Area:          req.Area,
		Floor:         req.Floor,
		BuiltYear:     req.BuiltYear,
		Features:      req.Features,
		Deposit:       req.Deposit,
		Utilities:     req.Utilities,
		AvailableFrom: req.AvailableFrom,
		Contact:       toContact(req.Contact),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, apartment)
}

func (h *ApartmentHandler) UpdateApartment(c echo.Context) error {
	var req updateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateApartmentInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Status:        req.Status,
		Type:          req.Type,
		Location:      req.Location,
		Rooms:         req.Rooms,
		Area:          req.Area,
		Floor:         req.Floor,
		BuiltYear:     req.BuiltYear,
		Features:      req.Features,
		Deposit:       req.Deposit,
		Utilities:     req.Utilities,
		AvailableFrom: req.AvailableFrom,
	}
	if req.Images != nil {
		images := toImageRefs(*req.Images)
		input.Images = &images
	}
	if req.Contact != nil {
		contact := toContact(req.Contact)
		input.Contact = &contact
	}

	apartment, err := h.apartmentUseCase.UpdateApartment(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apartment)
}

func (h *ApartmentHandler) DeleteApartment(c echo.Context) error {
	if err := h.apartmentUseCase.DeleteApartment(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"success": true})
}

func toImageRefs(images []imageRefRequest) []entity.ImageRef {
	if images == nil {
		return nil
	}

	refs := make([]entity.ImageRef, len(images))
	for i, img := range images {
		refs[i] = entity.ImageRef{
			URL:       img.URL,
			StorageID: img.StorageID,
		}
	}
	return refs
}

func toContact(contact *apartmentContactRequest) entity.ApartmentContact {
	if contact == nil {
		return entity.ApartmentContact{}
	}

	return entity.ApartmentContact{
		Name:     contact.Name,
		Phone:    contact.Phone,
		Email:    contact.Email,
		Whatsapp: contact.Whatsapp,
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// PlacesService is the service surface the places endpoints depend on.
type PlacesService interface {
	List(ctx context.Context, c dto.PlaceCriteria) (*dto.ListingResponse[entity.Place], error)
	Count(ctx context.Context, c dto.PlaceCriteria) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Place, error)
}

// PlacesHandler exposes the places listing, live count and place page.
type PlacesHandler struct {
	service PlacesService
}

// NewPlacesHandler creates a new handler instance.
func NewPlacesHandler(service PlacesService) *PlacesHandler {
	return &PlacesHandler{service: service}
}

func placeCriteria(c echo.Context) dto.PlaceCriteria {
	return dto.PlaceCriteria{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Count:    c.QueryParam("count"),
		Page:     pageParam(c),
	}
}

// List handles GET /places requests.
func (h *PlacesHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), placeCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to list places")
	}
	return Success(c, http.StatusOK, "places retrieved", result)
}

// Count handles GET /places/count requests.
func (h *PlacesHandler) Count(c echo.Context) error {
	total, err := h.service.Count(c.Request().Context(), placeCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to count places")
	}
	return Success(c, http.StatusOK, "places counted", dto.CountResponse{ResultCount: total})
}

// Show handles GET /places/:id requests.
func (h *PlacesHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	place, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "failed to load place")
	}
	return Success(c, http.StatusOK, "place retrieved", place)
}

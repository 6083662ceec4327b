package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// ToursService is the service surface the tour endpoints depend on.
type ToursService interface {
	List(ctx context.Context, page int) (*dto.ListingResponse[entity.Tour], error)
	Get(ctx context.Context, id int64) (*dto.TourDetail, error)
}

// ToursHandler exposes the tours listing and tour page.
type ToursHandler struct {
	service ToursService
}

// NewToursHandler creates a new handler instance.
func NewToursHandler(service ToursService) *ToursHandler {
	return &ToursHandler{service: service}
}

// List handles GET /tours requests.
func (h *ToursHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return respondError(c, err, "failed to list tours")
	}
	return Success(c, http.StatusOK, "tours retrieved", result)
}

// Show handles GET /tours/:id requests.
func (h *ToursHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "failed to load tour")
	}
	return Success(c, http.StatusOK, "tour retrieved", detail)
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// HotelsService is the service surface the hotel endpoints depend on.
type HotelsService interface {
	List(ctx context.Context, c dto.HotelCriteria) (*dto.ListingResponse[entity.Hotel], error)
	Count(ctx context.Context, c dto.HotelCriteria) (int64, error)
}

// HotelsHandler exposes the hotels listing and live count.
type HotelsHandler struct {
	service HotelsService
}

// NewHotelsHandler creates a new handler instance.
func NewHotelsHandler(service HotelsService) *HotelsHandler {
	return &HotelsHandler{service: service}
}

func hotelCriteria(c echo.Context) dto.HotelCriteria {
	return dto.HotelCriteria{
		Location: c.QueryParam("location"),
		Page:     pageParam(c),
	}
}

// List handles GET /hotels requests.
func (h *HotelsHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), hotelCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to list hotels")
	}
	return Success(c, http.StatusOK, "hotels retrieved", result)
}

// Count handles GET /hotels/count requests.
func (h *HotelsHandler) Count(c echo.Context) error {
	total, err := h.service.Count(c.Request().Context(), hotelCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to count hotels")
	}
	return Success(c, http.StatusOK, "hotels counted", dto.CountResponse{ResultCount: total})
}

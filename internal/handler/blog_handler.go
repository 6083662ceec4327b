package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// PostsService is the service surface the blog endpoints depend on.
type PostsService interface {
	List(ctx context.Context, c dto.PostCriteria) (*dto.ListingResponse[entity.Post], error)
	Count(ctx context.Context, c dto.PostCriteria) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
}

// BlogHandler exposes the blog listing, live count and post page.
type BlogHandler struct {
	service PostsService
}

// NewBlogHandler creates a new handler instance.
func NewBlogHandler(service PostsService) *BlogHandler {
	return &BlogHandler{service: service}
}

func postCriteria(c echo.Context) dto.PostCriteria {
	return dto.PostCriteria{
		Search:  c.QueryParam("search"),
		Subject: c.QueryParam("subject"),
		Page:    pageParam(c),
	}
}

// List handles GET /blog requests.
func (h *BlogHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), postCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to list posts")
	}
	return Success(c, http.StatusOK, "posts retrieved", result)
}

// Count handles GET /blog/count requests.
func (h *BlogHandler) Count(c echo.Context) error {
	total, err := h.service.Count(c.Request().Context(), postCriteria(c))
	if err != nil {
		return respondError(c, err, "failed to count posts")
	}
	return Success(c, http.StatusOK, "posts counted", dto.CountResponse{ResultCount: total})
}

// Show handles GET /blog/:id requests.
func (h *BlogHandler) Show(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "failed to load post")
	}
	return Success(c, http.StatusOK, "post retrieved", post)
}

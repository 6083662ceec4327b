package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// ContactService is the service surface the contact endpoint depends on.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*entity.ReceivedMessage, error)
}

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	service ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /contact requests. Form posts that carry a Referer are
// sent back to the referring page; other clients get 204.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.service.Submit(c.Request().Context(), req); err != nil {
		return respondError(c, err, "failed to store message")
	}

	if back := refererPath(c.Request().Referer()); back != "" {
		return c.Redirect(http.StatusSeeOther, back)
	}
	return c.NoContent(http.StatusNoContent)
}

// refererPath keeps only the path and query of the referer so the redirect
// never leaves this host.
func refererPath(referer string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

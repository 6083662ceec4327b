package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/service"
)

func TestBlogHandler_List(t *testing.T) {
	svc := &stubPostsService{list: &dto.ListingResponse[entity.Post]{
		Items:  dto.NewPage([]entity.Post{{ID: 1, Title: "Hiking"}}, 1, dto.PostsPerPage, 1),
		Facets: dto.Facets{Subjects: []entity.Subject{{ID: 2, Name: "Food"}}},
	}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog?search=hik&subject=1", nil)
	rec := httptest.NewRecorder()

	if err := NewBlogHandler(svc).List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastCriteria.Search != "hik" || svc.lastCriteria.Subject != "1" || svc.lastCriteria.Page != 1 {
		t.Fatalf("unexpected criteria: %+v", svc.lastCriteria)
	}
	if !strings.Contains(rec.Body.String(), `"subjects":[{"id":2,"name":"Food"}]`) {
		t.Fatalf("expected subject facets in body, got %s", rec.Body.String())
	}
}

func TestBlogHandler_Count(t *testing.T) {
	svc := &stubPostsService{total: 12}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog/count?subject=4", nil)
	rec := httptest.NewRecorder()

	if err := NewBlogHandler(svc).Count(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.lastCriteria.Subject != "4" {
		t.Fatalf("expected subject forwarded")
	}
	if !strings.Contains(rec.Body.String(), `"result_count":12`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogHandler_Show_NotFound(t *testing.T) {
	svc := &stubPostsService{err: &service.NotFoundError{Resource: "post", Key: "8"}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog/8", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("8")

	_ = NewBlogHandler(svc).Show(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if svc.lastID != 8 {
		t.Fatalf("expected id 8 forwarded, got %d", svc.lastID)
	}
}

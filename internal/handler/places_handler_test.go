package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/service"
	"github.com/Toylycker/Travel-Agency/internal/validation"
)

func TestPlacesHandler_List_Success(t *testing.T) {
	count := "7"
	svc := &stubPlacesService{list: &dto.ListingResponse[entity.Place]{
		Items:       dto.NewPage([]entity.Place{{ID: 1, Name: "Beach House"}}, 2, dto.PlacesPerPage, 11),
		HasResults:  true,
		ResultCount: &count,
	}}
	handler := NewPlacesHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/places?search=beach&category=Coastal&location=3&count=7&page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := dto.PlaceCriteria{Search: "beach", Category: "Coastal", Location: "3", Count: "7", Page: 2}
	if svc.lastCriteria != want {
		t.Fatalf("unexpected criteria: %+v", svc.lastCriteria)
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			Items struct {
				Data     []entity.Place `json:"data"`
				LastPage int            `json:"last_page"`
			} `json:"items"`
			HasResults  bool   `json:"has_results"`
			ResultCount string `json:"result_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "success" || len(payload.Data.Items.Data) != 1 || payload.Data.Items.LastPage != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !payload.Data.HasResults || payload.Data.ResultCount != "7" {
		t.Fatalf("expected has_results and result_count passthrough, got %+v", payload.Data)
	}
}

func TestPlacesHandler_List_PageFallback(t *testing.T) {
	tests := map[string]struct {
		target string
		want   int
	}{
		"missing":      {target: "/places", want: 1},
		"garbage":      {target: "/places?page=abc", want: 1},
		"zero":         {target: "/places?page=0", want: 1},
		"negative":     {target: "/places?page=-3", want: 1},
		"out of range": {target: "/places?page=99999999999999999999", want: 1},
		"max int":      {target: "/places?page=" + strconv.Itoa(math.MaxInt), want: math.MaxInt},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &stubPlacesService{list: &dto.ListingResponse[entity.Place]{}}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			if err := NewPlacesHandler(svc).List(e.NewContext(req, rec)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if svc.lastCriteria.Page != tt.want {
				t.Fatalf("expected page %d, got %d", tt.want, svc.lastCriteria.Page)
			}
		})
	}
}

func TestPlacesHandler_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
		body   string
	}{
		"validation": {
			err:    validation.NewError("search", "must be at most 10 characters"),
			status: http.StatusUnprocessableEntity,
			body:   `"search":"must be at most 10 characters"`,
		},
		"unknown reference": {
			err:    &service.NotFoundError{Resource: "category", Key: "Desert"},
			status: http.StatusNotFound,
			body:   `category \"Desert\" not found`,
		},
		"store failure": {
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   "failed to list places",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/places", nil)
			rec := httptest.NewRecorder()

			_ = NewPlacesHandler(&stubPlacesService{err: tt.err}).List(e.NewContext(req, rec))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Fatalf("expected body to contain %s, got %s", tt.body, rec.Body.String())
			}
			if strings.Contains(rec.Body.String(), "connection refused") {
				t.Fatalf("store error leaked to client")
			}
		})
	}
}

func TestPlacesHandler_Count(t *testing.T) {
	svc := &stubPlacesService{total: 3}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/places/count?search=lodge", nil)
	rec := httptest.NewRecorder()

	if err := NewPlacesHandler(svc).Count(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.lastCriteria.Search != "lodge" {
		t.Fatalf("expected search forwarded, got %+v", svc.lastCriteria)
	}
	if !strings.Contains(rec.Body.String(), `"result_count":3`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPlacesHandler_Show(t *testing.T) {
	tests := map[string]struct {
		id     string
		err    error
		status int
	}{
		"found":        {id: "5", status: http.StatusOK},
		"not found":    {id: "99", err: &service.NotFoundError{Resource: "place", Key: "99"}, status: http.StatusNotFound},
		"non numeric":  {id: "abc", status: http.StatusBadRequest},
		"non positive": {id: "0", status: http.StatusBadRequest},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &stubPlacesService{place: &entity.Place{ID: 5, Name: "Beach House"}, err: tt.err}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/places/"+tt.id, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			_ = NewPlacesHandler(svc).Show(c)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.status == http.StatusBadRequest && svc.lastID != 0 {
				t.Fatalf("service should not be called for invalid ids")
			}
		})
	}
}

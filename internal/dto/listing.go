package dto

import (
	"github.com/goccy/go-json"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// Page sizes per listing.
const (
	PlacesPerPage = 10
	PostsPerPage  = 10
	HotelsPerPage = 6
	ToursPerPage  = 4
)

// PlaceCriteria holds the query parameters of the places listing and count.
type PlaceCriteria struct {
	Search   string `json:"search" validate:"max=10"`
	Category string `json:"category" validate:"max=15"`
	Location string `json:"location" validate:"omitempty,number"`
	Count    string `json:"count"`
	Page     int    `json:"page"`
}

// PostCriteria holds the query parameters of the blog listing and count.
type PostCriteria struct {
	Search  string `json:"search" validate:"max=10"`
	Subject string `json:"subject" validate:"omitempty,max=15,number"`
	Page    int    `json:"page"`
}

// HotelCriteria holds the query parameters of the hotels listing and count.
type HotelCriteria struct {
	Location string `json:"location" validate:"omitempty,number"`
	Page     int    `json:"page"`
}

// Page is one offset-paginated slice of a listing.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// NewPage assembles page metadata. LastPage is never below 1.
func NewPage[T any](data []T, page, perPage int, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Page[T]{
		Data:     data,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
	}
}

// ActiveFilters echoes the normalized filter state of a listing request.
type ActiveFilters struct {
	Search   *string          `json:"search,omitempty"`
	Category *string          `json:"category,omitempty"`
	Location *entity.Location `json:"location,omitempty"`
	Subject  *entity.Subject  `json:"subject,omitempty"`
}

// Facets are the sibling option lists shown next to a listing. A nil list is
// a facet the listing does not have and is left out of the JSON; an empty
// list is rendered as [].
type Facets struct {
	Categories []entity.Category
	Locations  []entity.Location
	Subjects   []entity.Subject
}

// MarshalJSON implements json.Marshaler.
func (f Facets) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3)
	if f.Categories != nil {
		out["categories"] = f.Categories
	}
	if f.Locations != nil {
		out["locations"] = f.Locations
	}
	if f.Subjects != nil {
		out["subjects"] = f.Subjects
	}
	return json.Marshal(out)
}

// ListingResponse is the payload of every listing endpoint.
type ListingResponse[T any] struct {
	Items         Page[T]       `json:"items"`
	ActiveFilters ActiveFilters `json:"active_filters"`
	Facets        Facets        `json:"facets"`
	HasResults    bool          `json:"has_results"`
	// ResultCount passes the places `count` parameter through untouched.
	ResultCount *string `json:"result_count,omitempty"`
	// LocationID is set by the hotels listing, 0 when no location is selected.
	LocationID *int64 `json:"location_id,omitempty"`
}

// CountResponse is the payload of the count endpoints.
type CountResponse struct {
	ResultCount int64 `json:"result_count"`
}

// TourDetail is the payload of the tour page.
type TourDetail struct {
	Tour entity.Tour  `json:"tour"`
	Days []entity.Day `json:"days"`
}

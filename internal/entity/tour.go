package entity

// Tour is a multi-day itinerary.
type Tour struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Body        string  `json:"body"`
	Map         *string `json:"map,omitempty"`
	MainImage   *string `json:"main_image,omitempty"`
	TotalDays   int     `json:"total_days"`
	Viewed      int64   `json:"viewed"`
	Recommended bool    `json:"recommended"`
	Days        []Day   `json:"days,omitempty"`
	Notes       []Note  `json:"notes,omitempty"`
	Prices      []Price `json:"prices,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

// Day is a single day of a tour itinerary.
type Day struct {
	ID          int64   `json:"id"`
	TourID      int64   `json:"tour_id"`
	DayNumber   int     `json:"day_number"`
	Body        string  `json:"body"`
	PlacesCount int     `json:"places_count"`
	Places      []Place `json:"places"`
	Hotels      []Hotel `json:"hotels,omitempty"`
}

// Note is a remark attached to a tour.
type Note struct {
	ID     int64  `json:"id"`
	TourID int64  `json:"tour_id"`
	Body   string `json:"body"`
}

// Price is the tour price for a group size.
type Price struct {
	ID      int64   `json:"id"`
	TourID  int64   `json:"tour_id"`
	Persons int     `json:"persons"`
	Amount  float64 `json:"amount"`
}

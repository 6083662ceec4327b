package entity

// Hotel is an accommodation offered in a location.
type Hotel struct {
	ID          int64   `json:"id"`
	LocationID  int64   `json:"location_id"`
	Name        string  `json:"name"`
	Map         *string `json:"map,omitempty"`
	MainImage   *string `json:"main_image,omitempty"`
	Stars       int     `json:"stars"`
	Body        string  `json:"body"`
	Viewed      int64   `json:"viewed"`
	Recommended bool    `json:"recommended"`
	Images      []Image `json:"images,omitempty"`
	Rooms       []Room  `json:"rooms,omitempty"`
}

// Room is a bookable room type of a hotel.
type Room struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotel_id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
}

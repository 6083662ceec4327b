package entity

// Owner types stored in the polymorphic images and texts tables.
const (
	OwnerPlace = "place"
	OwnerHotel = "hotel"
	OwnerTour  = "tour"
	OwnerPost  = "post"
	OwnerText  = "text"
)

// Image is a picture attached to any owner.
type Image struct {
	ID        int64  `json:"id"`
	OwnerType string `json:"owner_type"`
	OwnerID   int64  `json:"owner_id"`
	Path      string `json:"path"`
}

// Text is a localized block of content attached to any owner.
type Text struct {
	ID        int64   `json:"id"`
	OwnerType string  `json:"owner_type"`
	OwnerID   int64   `json:"owner_id"`
	Locale    string  `json:"locale"`
	Title     *string `json:"title,omitempty"`
	Body      string  `json:"body"`
	Images    []Image `json:"images,omitempty"`
}

// Video belongs to a post.
type Video struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
}

// Link is an external reference shown on a place page.
type Link struct {
	ID      int64  `json:"id"`
	PlaceID int64  `json:"place_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

package entity

// Place is a point of interest listed in the catalogue.
type Place struct {
	ID         int64   `json:"id"`
	LocationID int64   `json:"location_id"`
	Name       string  `json:"name"`
	Body       string  `json:"body"`
	Images     []Image `json:"images,omitempty"`
	Texts      []Text  `json:"texts,omitempty"`
	Links      []Link  `json:"links,omitempty"`
}

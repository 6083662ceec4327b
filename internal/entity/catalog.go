package entity

// Location is a reference entity used to filter places and hotels.
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category tags places.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Subject tags blog posts.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

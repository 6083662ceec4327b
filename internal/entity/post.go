package entity

// Post is a blog article.
type Post struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	MainImage *string `json:"main_image,omitempty"`
	Images    []Image `json:"images,omitempty"`
	Texts     []Text  `json:"texts,omitempty"`
	Videos    []Video `json:"videos,omitempty"`
}

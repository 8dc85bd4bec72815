package request_models

type CreatePrayerRequest struct {
	Title      string   `json:"title" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	AuthorName string   `json:"author_name"`
	Tags       []string `json:"tags"`
}

type CreateBookRequest struct {
	Title    string   `json:"title" binding:"required"`
	Author   string   `json:"author"`
	FileURL  string   `json:"file_url" binding:"required,url"`
	CoverURL string   `json:"cover_url"`
	Tags     []string `json:"tags"`
}

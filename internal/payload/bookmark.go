package payload

type CreateBookmarkRequest struct {
	URL         string `json:"url"   validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ContentType string `json:"contentType"`
}

// UpdateBookmarkRequest carries a partial update; absent fields are left
// untouched. The URL and owner of a bookmark are immutable.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ContentType *string `json:"contentType"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

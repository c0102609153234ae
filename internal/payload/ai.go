package payload

import "github.com/personalvault/synapse-api/internal/usecase"

// SummarizeRequest requires at least one of URL or Content; the handler
// enforces that rather than a validate tag so the error message matches the
// endpoint contract.
type SummarizeRequest struct {
	URL     string `json:"url"`
	Content string `json:"content"`
	Title   string `json:"title"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type SearchResponse struct {
	Results []usecase.SearchResult `json:"results"`
}

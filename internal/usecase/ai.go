package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/personalvault/synapse-api/internal/llm"
	"github.com/personalvault/synapse-api/internal/repository"
)

// AIUsecase defines the interface for language-model-backed operations.
type AIUsecase interface {
	Summarize(ctx context.Context, params SummarizeParams) (string, error)
	Search(ctx context.Context, userID, query string) ([]SearchResult, error)
}

// SummarizeParams defines the input for content summarization. At least one
// of URL or Content must be set.
type SummarizeParams struct {
	URL     string
	Content string
	Title   string
}

// SearchResult is one relevance hit returned by the language model.
type SearchResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type aiUsecase struct {
	bookmarkRepo repository.BookmarkRepository
	backend      llm.Client
}

func NewAIUsecase(bookmarkRepo repository.BookmarkRepository, backend llm.Client) AIUsecase {
	return &aiUsecase{
		bookmarkRepo: bookmarkRepo,
		backend:      backend,
	}
}

func (u *aiUsecase) Summarize(ctx context.Context, params SummarizeParams) (string, error) {
	if params.URL == "" && params.Content == "" {
		return "", ErrMissingFields
	}

	var prompt strings.Builder
	prompt.WriteString("Please provide a concise summary (2-3 sentences) of the following content. ")
	prompt.WriteString("Make it engaging and informative.")

	if params.Title != "" {
		fmt.Fprintf(&prompt, "\nTitle: %s", params.Title)
	}

	if params.Content != "" {
		fmt.Fprintf(&prompt, "\n\nContent to summarize: %s", params.Content)
	} else {
		fmt.Fprintf(&prompt, "\n\nArticle URL to summarize: %s", params.URL)
	}

	return u.backend.Complete(ctx, prompt.String())
}

func (u *aiUsecase) Search(ctx context.Context, userID, query string) ([]SearchResult, error) {
	if query == "" {
		return nil, ErrMissingFields
	}

	bookmarks, err := u.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Nothing to rank; skip the backend call entirely.
	if len(bookmarks) == 0 {
		return []SearchResult{}, nil
	}

	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		lines = append(lines, fmt.Sprintf(
			"ID: %s, Title: %s, Description: %s, URL: %s",
			b.ID.Hex(), b.Title, b.Description, b.URL,
		))
	}

	prompt := fmt.Sprintf(
		"You are a search assistant. Given these bookmarks:\n\n%s\n\n"+
			"Find ones relevant to the query %q. Respond ONLY as JSON array of {id, title, reason}.",
		strings.Join(lines, "\n"), query,
	)

	text, err := u.backend.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return extractSearchResults(text), nil
}

// extractSearchResults pulls the first-to-last bracket-delimited substring
// out of free-text model output and decodes it as a result array. Models
// routinely wrap the array in prose, so anything that does not parse fails
// open to an empty result set rather than an error.
func extractSearchResults(text string) []SearchResult {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return []SearchResult{}
	}

	var results []SearchResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &results); err != nil {
		return []SearchResult{}
	}

	return results
}

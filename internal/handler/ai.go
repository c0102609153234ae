package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/personalvault/synapse-api/internal/httpx"
	"github.com/personalvault/synapse-api/internal/middleware"
	"github.com/personalvault/synapse-api/internal/payload"
	"github.com/personalvault/synapse-api/internal/usecase"
	"github.com/personalvault/synapse-api/internal/validation"
)

// AIHandler serves the summarize and search endpoints backed by the
// configured language model.
type AIHandler struct {
	aiUsecase usecase.AIUsecase
	validator *validation.Validator
	logger    *zerolog.Logger
}

func NewAIHandler(
	aiUsecase usecase.AIUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *AIHandler {
	return &AIHandler{
		aiUsecase: aiUsecase,
		validator: validator,
		logger:    logger,
	}
}

func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req payload.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "URL or content required")
		return
	}

	summary, err := h.aiUsecase.Summarize(r.Context(), usecase.SummarizeParams{
		URL:     req.URL,
		Content: req.Content,
		Title:   req.Title,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "URL or content required")
			return
		}

		h.logger.Error().Err(err).Msg("failed to summarize content")
		httpx.WriteError(w, http.StatusBadGateway, "AI backend error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload.SummarizeResponse{Summary: summary})
}

func (h *AIHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req payload.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Query required")
		return
	}

	if violations := h.validator.Struct(req); violations != nil {
		h.logger.Warn().Strs("violations", violations).Msg("invalid search payload")
		httpx.WriteError(w, http.StatusBadRequest, "Query required")
		return
	}

	results, err := h.aiUsecase.Search(r.Context(), userID, req.Query)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "Query required")
			return
		}

		h.logger.Error().Err(err).Msg("failed to search bookmarks")
		httpx.WriteError(w, http.StatusBadGateway, "AI backend error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload.SearchResponse{Results: results})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/personalvault/synapse-api/internal/httpx"
	"github.com/personalvault/synapse-api/internal/middleware"
	"github.com/personalvault/synapse-api/internal/payload"
	"github.com/personalvault/synapse-api/internal/usecase"
	"github.com/personalvault/synapse-api/internal/validation"
)

// BookmarkHandler serves the bookmark CRUD endpoints. All routes sit behind
// the authenticator middleware, which scopes every call to the token's user.
type BookmarkHandler struct {
	bookmarkUsecase usecase.BookmarkUsecase
	validator       *validation.Validator
	logger          *zerolog.Logger
}

func NewBookmarkHandler(
	bookmarkUsecase usecase.BookmarkUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUsecase: bookmarkUsecase,
		validator:       validator,
		logger:          logger,
	}
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookmarks, err := h.bookmarkUsecase.List(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list bookmarks")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req payload.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "URL and title required")
		return
	}

	if violations := h.validator.Struct(req); violations != nil {
		h.logger.Warn().Strs("violations", violations).Msg("invalid create bookmark payload")
		httpx.WriteError(w, http.StatusBadRequest, "URL and title required")
		return
	}

	bookmark, err := h.bookmarkUsecase.Create(r.Context(), userID, usecase.CreateBookmarkParams{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ContentType: req.ContentType,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "URL and title required")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create bookmark")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req payload.UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.bookmarkUsecase.Update(r.Context(), userID, chi.URLParam(r, "id"), usecase.UpdateBookmarkParams{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ContentType: req.ContentType,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Bookmark not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update bookmark")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload.SuccessResponse{Success: true})
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := h.bookmarkUsecase.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Bookmark not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete bookmark")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload.SuccessResponse{Success: true})
}

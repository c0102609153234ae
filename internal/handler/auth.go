package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/personalvault/synapse-api/internal/httpx"
	"github.com/personalvault/synapse-api/internal/payload"
	"github.com/personalvault/synapse-api/internal/usecase"
	"github.com/personalvault/synapse-api/internal/validation"
)

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	if violations := h.validator.Struct(req); violations != nil {
		h.logger.Warn().Strs("violations", violations).Msg("invalid register payload")
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	result, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httpx.WriteError(w, http.StatusBadRequest, "User already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, payload.AuthResponse{
		Token: result.Token,
		User:  payload.AuthUser{ID: result.User.ID, Email: result.User.Email},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	if violations := h.validator.Struct(req); violations != nil {
		h.logger.Warn().Strs("violations", violations).Msg("invalid login payload")
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	result, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload.AuthResponse{
		Token: result.Token,
		User:  payload.AuthUser{ID: result.User.ID, Email: result.User.Email},
	})
}

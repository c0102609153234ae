package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/personalvault/synapse-api/internal/httpx"
	"github.com/personalvault/synapse-api/internal/middleware"
	"github.com/personalvault/synapse-api/internal/usecase"
)

// NewRouter wires every endpoint and its middleware chain.
func NewRouter(
	authHandler *AuthHandler,
	bookmarkHandler *BookmarkHandler,
	aiHandler *AIHandler,
	authUsecase usecase.AuthUsecase,
	logger *zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(middleware.Authenticator(authUsecase, logger))
		r.Get("/", bookmarkHandler.List)
		r.Post("/", bookmarkHandler.Create)
		r.Patch("/{id}", bookmarkHandler.Update)
		r.Delete("/{id}", bookmarkHandler.Delete)
	})

	r.Route("/ai", func(r chi.Router) {
		// Summarize takes no identity; search ranks the caller's own corpus.
		r.Post("/summarize", aiHandler.Summarize)
		r.With(middleware.Authenticator(authUsecase, logger)).Post("/search", aiHandler.Search)
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

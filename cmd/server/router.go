package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/flashcards-api/internal/api"
	apiMiddleware "github.com/phrazzld/flashcards-api/internal/api/middleware"
	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/redact"
)

// routerDeps are the collaborators the router is assembled from.
// A nil limiter disables rate limiting.
type routerDeps struct {
	logger   *slog.Logger
	auth     *apiMiddleware.AuthMiddleware
	limiter  apiMiddleware.Limiter
	health   func(ctx context.Context) error
	authH    *api.AuthHandler
	users    *api.UserHandler
	sets     *api.SetHandler
	cards    *api.CardHandler
	learning *api.LearningHandler
}

// newRouter creates the application router with all routes and middleware.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(d.logger))

	limit := func(next http.Handler) http.Handler { return next }
	if d.limiter != nil {
		limit = apiMiddleware.RateLimit(d.limiter)
	}

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Post("/auth/register", d.authH.Register)
			r.Post("/auth/login", d.authH.Login)
			r.Post("/auth/refresh", d.authH.RefreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(d.auth.Authenticate)
			r.Use(limit)

			r.Get("/users/me", d.users.Me)
			r.Get("/users/{userId}", d.users.GetUser)

			r.Get("/sets", d.sets.ListSets)
			r.Post("/sets", d.sets.CreateSet)
			r.Get("/sets/{setId}", d.sets.GetSet)
			r.Put("/sets/{setId}", d.sets.UpdateSet)
			r.Delete("/sets/{setId}", d.sets.DeleteSet)

			r.Get("/sets/{setId}/cards", d.cards.ListCards)
			r.Post("/sets/{setId}/cards", d.cards.AddCard)
			r.Get("/cards/{cardId}", d.cards.GetCard)
			r.Put("/cards/{cardId}", d.cards.UpdateCard)
			r.Delete("/cards/{cardId}", d.cards.DeleteCard)

			r.Post("/learning/questions", d.learning.CreateQuestion)
			r.Put("/learning/questions/{questionId}", d.learning.SubmitAnswer)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if d.health != nil {
			if err := d.health(r.Context()); err != nil {
				d.logger.Error("health check failed", slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Service unavailable")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			d.logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}

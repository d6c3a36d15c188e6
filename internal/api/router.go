// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package api provides the PetMatch HTTP surface on the chi router: animal
// listing CRUD, personalized recommendations, health probes, and Prometheus
// metrics.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/petmatch/petmatch/internal/config"
	"github.com/petmatch/petmatch/internal/middleware"
	"github.com/petmatch/petmatch/internal/models"
	"github.com/petmatch/petmatch/internal/recommend"
)

// AnimalService is the listing CRUD surface the handlers need. Implemented by
// store.AnimalStore.
type AnimalService interface {
	PutAnimal(ctx context.Context, animal *models.Animal) error
	GetAnimalByID(ctx context.Context, id int64) (models.Animal, error)
	ListAnimals(ctx context.Context) ([]models.Animal, error)
	MarkAdopted(ctx context.Context, id int64) error
	DeleteAnimal(ctx context.Context, id int64) error
}

// Recommender is the recommendation surface the handlers need. Implemented by
// recommend.Coordinator.
type Recommender interface {
	FetchRanked(ctx context.Context, userID int64) ([]recommend.ScoredCandidate, error)
	Like(ctx context.Context, userID, animalID int64) error
	Dislike(ctx context.Context, userID, animalID int64) error
}

// Handler carries the dependencies of all HTTP handlers.
type Handler struct {
	animals     AnimalService
	recommender Recommender

	// ready reports whether the service can take traffic. nil means always
	// ready.
	ready func(ctx context.Context) error

	logger zerolog.Logger
}

// NewHandler builds the handler set.
func NewHandler(animals AnimalService, recommender Recommender, ready func(ctx context.Context) error, logger zerolog.Logger) *Handler {
	return &Handler{
		animals:     animals,
		recommender: recommender,
		ready:       ready,
		logger:      logger.With().Str("component", "api").Logger(),
	}
}

// NewRouter assembles the chi router with the full middleware stack.
func NewRouter(h *Handler, cfg config.APIConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.RateLimitDisabled {
			r.Use(httprate.LimitByIP(cfg.RateLimitReqs, cfg.RateLimitWindow))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", h.ListAnimals)
			r.Post("/", h.CreateAnimal)
			r.Get("/{animalID}", h.GetAnimal)
			r.Put("/{animalID}/adopt", h.AdoptAnimal)
			r.Delete("/{animalID}", h.DeleteAnimal)
		})

		r.Route("/recommendations/{userID}", func(r chi.Router) {
			r.Get("/", h.Recommendations)
			r.Put("/like/{animalID}", h.LikeAnimal)
			r.Put("/dislike/{animalID}", h.DislikeAnimal)
		})
	})

	return r
}

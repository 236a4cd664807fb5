package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/snapvault/photo-api/internal/api"
	apiMiddleware "github.com/snapvault/photo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.RequestLogger(app.logger))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher, app.logger)
	albumHandler := api.NewAlbumHandler(app.gallery, app.logger)
	photoHandler := api.NewPhotoHandler(app.gallery, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public; refresh authenticates itself
	// against the refresh-token secret)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/refresh", authHandler.Refresh)

	// Protected resource routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/albums", albumHandler.List)
		r.Post("/albums", albumHandler.Create)
		r.Get("/albums/{albumId}", albumHandler.Get)
		r.Put("/albums/{albumId}", albumHandler.Update)
		r.Delete("/albums/{albumId}", albumHandler.Delete)
		r.Post("/albums/{albumId}/photos", albumHandler.AttachPhoto)

		r.Get("/photos", photoHandler.List)
		r.Post("/photos", photoHandler.Create)
		r.Get("/photos/{photoId}", photoHandler.Get)
		r.Put("/photos/{photoId}", photoHandler.Update)
		r.Delete("/photos/{photoId}", photoHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/snapvault/photo-api/internal/config"
	"github.com/snapvault/photo-api/internal/platform/postgres"
	"github.com/snapvault/photo-api/internal/service/auth"
	"github.com/snapvault/photo-api/internal/service/gallery"
	"github.com/snapvault/photo-api/internal/store"
)

// application bundles the long-lived dependencies built once at startup
// and injected into handlers. All request state flows through the stores;
// nothing here is mutated after construction.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	gallery    gallery.Service
}

// newApplication wires the service graph from configuration and an open
// database connection.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	albumStore := postgres.NewPostgresAlbumStore(db, logger)
	photoStore := postgres.NewPostgresPhotoStore(db, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		userStore:  postgres.NewPostgresUserStore(db, logger),
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		gallery:    gallery.NewService(albumStore, photoStore, logger),
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run() error {
	return app.startHTTPServer(app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

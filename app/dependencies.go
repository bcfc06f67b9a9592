package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dannykellett/ai-chat-bot/config"
	"github.com/dannykellett/ai-chat-bot/internal/auth"
	"github.com/dannykellett/ai-chat-bot/middleware"
)

// Dependencies holds all application dependencies. It is the central wiring
// point for dependency injection: the Config snapshot is resolved once in
// main and handed to every component from here.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// DB is non-nil only when DATABASE_URL points at PostgreSQL. It is used
	// by the readiness check alone, never by /health.
	DB *sql.DB

	// InstanceID identifies this process for the status endpoint.
	InstanceID uuid.UUID

	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:     cfg,
		Logger:     logger,
		InstanceID: uuid.New(),
	}

	deps.initDatabase(ctx, cfg)
	deps.initAuth(cfg)

	logger.Info("all dependencies initialized",
		zap.String("instance_id", deps.InstanceID.String()))
	return deps, nil
}

// initDatabase opens a PostgreSQL pool when DATABASE_URL calls for one. An
// unreachable database is not fatal: the readiness endpoint will report it,
// while /health stays independent of it.
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) {
	if !cfg.DatabaseIsPostgres() {
		d.Logger.Info("no PostgreSQL database configured",
			zap.String("database_url", cfg.DatabaseLogString()))
		return
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		d.Logger.Warn("failed to open database handle",
			zap.String("database", cfg.DatabaseLogString()),
			zap.Error(err))
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		d.Logger.Warn("database unreachable at startup",
			zap.String("database", cfg.DatabaseLogString()),
			zap.Error(err))
	} else {
		d.Logger.Info("database connection established",
			zap.String("database", cfg.DatabaseLogString()))
	}

	d.DB = db
}

func (d *Dependencies) initAuth(cfg *config.Config) {
	validator := auth.NewHMACValidator(cfg.SecretKey)
	d.AuthMiddleware = middleware.NewAuthMiddleware(validator, d.Logger)
}

// Close releases held resources.
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

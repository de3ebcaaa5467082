package setup

import (
	"context"
	"log"

	"github.com/moddeck/moddeck/internal/database"
	"github.com/moddeck/moddeck/internal/discord"
	"github.com/moddeck/moddeck/internal/moderation"
	"github.com/moddeck/moddeck/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
type App struct {
	Config *config.Config     // Application configuration
	Logger *zap.Logger        // Main application logger
	DB     database.Client    // Database connection pool
	Engine *moderation.Engine // Sanction engine
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context) (*App, error) {
	// Load app configuration
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := NewLoggers(&cfg.Debug)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", zap.String("configDir", configDir))

	// Initialize database with migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Wire the sanction engine with its enforcement gateway and store
	gateway := discord.NewGateway(&cfg.Discord, logger)
	engine := moderation.NewEngine(db.Model().Sanction(), gateway, logger)

	return &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Engine: engine,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse
// initialization order. Logs but does not fail on cleanup errors so every
// component gets a cleanup attempt.
func (a *App) Cleanup() {
	// Sync buffered logs before shutdown
	if err := a.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	// Close database connections
	if err := a.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}
}

package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/moddeck/moddeck/internal/moderation"
	"github.com/moddeck/moddeck/internal/rest/handler"
	"github.com/moddeck/moddeck/internal/rest/middleware/auth"
	"github.com/moddeck/moddeck/internal/rest/middleware/header"
	"github.com/moddeck/moddeck/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	moderationHandler *handler.ModerationHandler
}

// NewServer creates a new REST API server.
func NewServer(engine *moderation.Engine, logger *zap.Logger, config *config.APIConfig) http.Handler {
	// Create server instance with handlers
	server := &Server{
		moderationHandler: handler.NewModerationHandler(engine, logger),
	}

	// Create middleware instances
	headerMiddleware := header.New(logger)
	authMiddleware := auth.New(config, logger)

	// Create base router
	router := bunrouter.New()

	// Create API routes group
	router.Use(
		headerMiddleware.AsRESTMiddleware,
		authMiddleware.AsRESTMiddleware,
	).WithGroup("/moderation", func(g *bunrouter.Group) {
		g.POST("/punish", server.moderationHandler.Punish)
		g.GET("/active", server.moderationHandler.Active)
		g.GET("/history", server.moderationHandler.History)
		g.POST("/reverse/:recordId", server.moderationHandler.Reverse)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}

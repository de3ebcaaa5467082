package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/moddeck/moddeck/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Middleware authenticates requests with a bearer API key.
type Middleware struct {
	config *config.APIConfig
	logger *zap.Logger
}

// New creates a new auth middleware.
func New(config *config.APIConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		config: config,
		logger: logger,
	}
}

// AsRESTMiddleware returns a bunrouter middleware that rejects requests
// without a configured API key in the Authorization header.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		key, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !ok || !m.isValidKey(key) {
			m.logger.Debug("Rejected unauthenticated request",
				zap.String("path", req.URL.Path))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

			return nil
		}

		return next(w, req)
	}
}

// isValidKey compares the presented key against every configured key in
// constant time.
func (m *Middleware) isValidKey(key string) bool {
	valid := false
	for _, candidate := range m.config.APIKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			valid = true
		}
	}

	return valid
}

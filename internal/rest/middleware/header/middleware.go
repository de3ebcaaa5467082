package header

import (
	"context"
	"net/http"

	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type remoteAddrCtxKey struct{}

// FromRemoteAddr retrieves the remote address from context.
func FromRemoteAddr(ctx context.Context) string {
	if addr, ok := ctx.Value(remoteAddrCtxKey{}).(string); ok {
		return addr
	}
	return ""
}

// Middleware handles header extraction and storage.
type Middleware struct {
	logger *zap.Logger
}

// New creates a new header middleware.
func New(logger *zap.Logger) *Middleware {
	return &Middleware{
		logger: logger,
	}
}

// AsRESTMiddleware returns a bunrouter middleware that stores the remote
// address in the request context for downstream handlers and logging.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		addr := req.Header.Get("X-Forwarded-For")
		if addr == "" {
			addr = req.RemoteAddr
		}

		ctx := context.WithValue(req.Context(), remoteAddrCtxKey{}, addr)

		return next(w, req.WithContext(ctx))
	}
}

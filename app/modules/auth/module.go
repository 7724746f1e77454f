package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	authdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/fantasy-league/config"
	"golang.org/x/time/rate"
)

// Module bundles the token provider and the HTTP middleware other modules
// mount on their routes.
type Module struct {
	Provider authjwt.Provider
	logger   *slog.Logger
	origins  []string
	limiter  *authhandlers.IPRateLimiter
}

// NewModule creates the auth module. A JWT secret is required.
func NewModule(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Module, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	logger.InfoContext(ctx, "Initializing auth module")

	return &Module{
		Provider: authjwt.NewProvider(cfg.JWT.Secret, cfg.JWT.Issuer),
		logger:   logger,
		origins:  cfg.HTTP.AllowedOrigins,
		limiter:  authhandlers.NewIPRateLimiter(rate.Limit(5), 10),
	}, nil
}

// CORS applies the configured allowed origins.
func (m *Module) CORS() func(http.Handler) http.Handler {
	return authhandlers.CORSMiddleware(m.origins)
}

// WriteGuard authenticates the caller, limits the request rate per IP and
// requires one of roles.
func (m *Module) WriteGuard(roles ...authdomain.Role) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		authhandlers.RateLimitMiddleware(m.limiter),
		authhandlers.RequireAuth(m.Provider, m.logger),
		authhandlers.RequireRole(roles...),
	}
}

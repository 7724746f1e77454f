package nflteam

import (
	"context"
	"net/http"

	nflteamservice "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/application"
	nflteamhandlers "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/handlers"
	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the NFL team catalog module.
type Module struct {
	Repository nflteamdb.Repository
	Service    nflteamservice.Service
}

// NewModule wires the team repository, service and HTTP routes.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	writeGuard []func(http.Handler) http.Handler,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "nflteam.NewModule initializing")

	repo := nflteamdb.NewRepository(db)
	service := nflteamservice.NewNFLTeamService(repo, logger, obs.Metrics, obs.Tracer, db)

	if httpRouter != nil {
		handlers := nflteamhandlers.NewHandlers(service, logger)
		httpRouter.Route("/api/teams", func(r chi.Router) {
			handlers.Routes(r, writeGuard...)
		})
	}

	return &Module{Repository: repo, Service: service}
}

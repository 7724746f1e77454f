package news

import (
	"context"
	"net/http"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	newsservice "github.com/Black-And-White-Club/fantasy-league/app/modules/news/application"
	newshandlers "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/handlers"
	newsdb "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the player news module.
type Module struct {
	Repository newsdb.Repository
	Service    newsservice.Service
}

// NewModule wires the news repository, service and HTTP routes.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	players playerdb.Repository,
	eventBus eventbus.EventBus,
	httpRouter chi.Router,
	writeGuard []func(http.Handler) http.Handler,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "news.NewModule initializing")

	var txRunner database.TxRunner
	if db != nil {
		txRunner = db
	}

	repo := newsdb.NewRepository(db)
	service := newsservice.NewNewsService(repo, players, eventBus, logger, obs.Metrics, obs.Tracer, txRunner)

	if httpRouter != nil {
		handlers := newshandlers.NewHandlers(service, logger)
		httpRouter.Route("/api/news", func(r chi.Router) {
			handlers.Routes(r, writeGuard...)
		})
	}

	return &Module{Repository: repo, Service: service}
}

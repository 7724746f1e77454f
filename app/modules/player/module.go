package player

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/adapters"
	playerhandlers "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/handlers"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	playerstorage "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/storage"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// processedDir is the archive area below the storage root.
const processedDir = "processed"

// Module represents the player catalog module.
type Module struct {
	Repository playerdb.Repository
	Service    playerservice.Service
	Store      *playerstorage.FileStore
}

// NewModule wires the player repository, batch import pipeline and HTTP routes.
// httpRouter may be nil for command-line use.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	db *bun.DB,
	teams nflteamdb.Repository,
	eventBus eventbus.EventBus,
	httpRouter chi.Router,
	writeGuard []func(http.Handler) http.Handler,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "player.NewModule initializing")

	repo := playerdb.NewRepository(db)
	store := playerstorage.NewFileStore(filepath.Join(cfg.Storage.RootDir, processedDir))
	archiver := playerservice.NewArchiver(store, cfg.Storage.BatchSubfolder, logger)

	var txRunner database.TxRunner
	if db != nil {
		txRunner = db
	}
	service := playerservice.NewPlayerService(
		repo,
		adapters.NewTeamLookupAdapter(teams),
		archiver,
		eventBus,
		logger,
		obs.Metrics,
		obs.Tracer,
		txRunner,
		cfg.Batch.ExposeErrorDetails,
	)

	if httpRouter != nil {
		handlers := playerhandlers.NewHandlers(service, logger, cfg.Batch.MaxUploadBytes)
		httpRouter.Route("/api/players", func(r chi.Router) {
			handlers.Routes(r, writeGuard...)
		})
	}

	return &Module{Repository: repo, Service: service, Store: store}
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/auth"
	authdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/domain"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/news"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// App holds the application components.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Router        chi.Router

	AuthModule    *auth.Module
	NFLTeamModule *nflteam.Module
	PlayerModule  *player.Module
	NewsModule    *news.Module
}

// Initialize wires the event bus, HTTP router and every module. db is owned
// by the caller.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, obs *observability.Observability, db *bun.DB) error {
	if cfg == nil || obs == nil || db == nil {
		return errors.New("config, observability and database are required")
	}
	app.Config = cfg
	app.Observability = obs
	app.DB = db

	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing application")

	app.EventBus = eventbus.NewEventBus(logger)
	if err := eventbus.SubscribeAuditLog(ctx, app.EventBus, logger,
		eventbus.PlayersBatchImportedTopic,
		eventbus.PlayerDesignationUpdatedTopic,
	); err != nil {
		return err
	}

	authModule, err := auth.NewModule(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	app.AuthModule = authModule

	var health pinger
	if db != nil {
		health = db
	}
	app.Router = newRouter(obs, health, authModule.CORS())

	adminOnly := authModule.WriteGuard(authdomain.RoleAdmin)
	editors := authModule.WriteGuard(authdomain.RoleEditor, authdomain.RoleAdmin)

	app.NFLTeamModule = nflteam.NewModule(ctx, obs, db, app.Router, adminOnly)
	app.PlayerModule = player.NewModule(ctx, cfg, obs, db, app.NFLTeamModule.Repository, app.EventBus, app.Router, adminOnly)
	app.NewsModule = news.NewModule(ctx, obs, db, app.PlayerModule.Repository, app.EventBus, app.Router, editors)

	logger.InfoContext(ctx, "Application initialized")
	return nil
}

// Close releases the event bus. The database is closed by its owner.
func (app *App) Close() error {
	if app.EventBus == nil {
		return nil
	}
	return app.EventBus.Close()
}

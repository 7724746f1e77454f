// Package migrations lists the module migration sets in dependency order.
package migrations

import (
	"context"
	"fmt"

	newsmigrations "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/repositories/migrations"
	nflteammigrations "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories/migrations"
	playermigrations "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is a migrator bound to one module's migration set.
type ModuleMigrator struct {
	Module   string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module, teams before players before
// news. Each module tracks its migrations in its own table.
func Migrators(db *bun.DB) []ModuleMigrator {
	sets := []struct {
		module     string
		migrations *migrate.Migrations
	}{
		{"nflteam", nflteammigrations.Migrations},
		{"player", playermigrations.Migrations},
		{"news", newsmigrations.Migrations},
	}

	out := make([]ModuleMigrator, 0, len(sets))
	for _, set := range sets {
		out = append(out, ModuleMigrator{
			Module: set.module,
			Migrator: migrate.NewMigrator(db, set.migrations,
				migrate.WithTableName("bun_migrations_"+set.module),
				migrate.WithLocksTableName("bun_migration_locks_"+set.module),
			),
		})
	}
	return out
}

// Up initializes the migration tables and applies every pending migration.
func Up(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
	}
	return nil
}

// Down rolls back the last migration group of every module, in reverse order.
func Down(ctx context.Context, db *bun.DB) error {
	migrators := Migrators(db)
	for i := len(migrators) - 1; i >= 0; i-- {
		m := migrators[i]
		if _, err := m.Migrator.Rollback(ctx); err != nil {
			return fmt.Errorf("failed to roll back %s: %w", m.Module, err)
		}
	}
	return nil
}

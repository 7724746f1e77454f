package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Black-And-White-Club/fantasy-league/app"
	"github.com/Black-And-White-Club/fantasy-league/app/migrations"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/auth"
	authdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/domain"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/config"
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "fantasy",
		Usage: "fantasy league API and operations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			importCommand(),
			tokenCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newObservability(cfg *config.Config) *observability.Observability {
	return observability.New(observability.Config{
		ServiceName: cfg.Observability.ServiceName,
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})
}

func openDB(c *cli.Context) (*config.Config, *bun.DB, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(c.Context, cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) error {
			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, db, err := openDB(c)
			if err != nil {
				return err
			}
			defer db.Close()

			obs := newObservability(cfg)
			application := &app.App{}
			if err := application.Initialize(ctx, cfg, obs, db); err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer application.Close()

			return application.Start(ctx)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrators(func(c *cli.Context, m migrations.ModuleMigrator) error {
					fmt.Printf("Initializing migrations for module: %s\n", m.Module)
					return m.Migrator.Init(c.Context)
				}),
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: withMigrators(func(c *cli.Context, m migrations.ModuleMigrator) error {
					if err := m.Migrator.Init(c.Context); err != nil {
						return err
					}
					group, err := m.Migrator.Migrate(c.Context)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Printf("No new migrations to run for module: %s\n", m.Module)
					} else {
						fmt.Printf("Migrated module: %s to %s\n", m.Module, group)
					}
					return nil
				}),
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of every module",
				Action: func(c *cli.Context) error {
					_, db, err := openDB(c)
					if err != nil {
						return err
					}
					defer db.Close()

					all := migrations.Migrators(db)
					for i := len(all) - 1; i >= 0; i-- {
						group, err := all[i].Migrator.Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", all[i].Module)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", all[i].Module, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: withMigrators(func(c *cli.Context, m migrations.ModuleMigrator) error {
					ms, err := m.Migrator.MigrationsWithStatus(c.Context)
					if err != nil {
						return err
					}
					fmt.Printf("Migrations for module: %s\n", m.Module)
					fmt.Printf("  %s\n", ms)
					fmt.Printf("  Applied: %s\n", ms.Applied())
					fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					return nil
				}),
			},
		},
	}
}

// withMigrators runs fn for each module migrator in dependency order.
func withMigrators(fn func(c *cli.Context, m migrations.ModuleMigrator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		_, db, err := openDB(c)
		if err != nil {
			return err
		}
		defer db.Close()

		for _, m := range migrations.Migrators(db) {
			if err := fn(c, m); err != nil {
				return fmt.Errorf("module %s: %w", m.Module, err)
			}
		}
		return nil
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a roster file with the same rules as the batch endpoint",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("a roster file is required", 2)
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read roster file: %w", err)
			}

			cfg, db, err := openDB(c)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := c.Context
			obs := newObservability(cfg)
			teams := nflteam.NewModule(ctx, obs, db, nil, nil)
			players := player.NewModule(ctx, cfg, obs, db, teams.Repository, nil, nil, nil)

			outcome := players.Service.ImportBatch(ctx, filepath.Base(path), content)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(outcome); err != nil {
				return err
			}
			if !outcome.Success {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue a signed API token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sub", Usage: "token subject", Required: true},
			&cli.StringFlag{Name: "role", Value: string(authdomain.RoleViewer), Usage: "viewer, editor or admin"},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime (defaults to the configured TTL)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			role := authdomain.Role(c.String("role"))
			if !role.IsValid() {
				return cli.Exit(fmt.Sprintf("unknown role %q", role), 2)
			}
			ttl := c.Duration("ttl")
			if ttl == 0 {
				ttl = cfg.JWT.DefaultTTL
			}

			authModule, err := auth.NewModule(context.Background(), cfg, newObservability(cfg).Logger)
			if err != nil {
				return err
			}
			token, err := authModule.Provider.GenerateToken(c.String("sub"), role, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}

package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Black-And-White-Club/fantasy-league/app/migrations"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/config"
	"github.com/Black-And-White-Club/fantasy-league/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// TestEnvironment holds all resources needed for integration testing.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	Config        *config.Config
	Obs           *observability.Observability
	StorageRoot   string
}

// NewTestEnvironment starts Postgres, runs every module migration and
// prepares a scratch storage root.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	db, err := database.Open(ctx, pgConnStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	storageRoot, err := os.MkdirTemp("", "fantasy-integration-*")
	if err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		Config:        testConfig(pgConnStr, storageRoot),
		Obs:           observability.NewNoop(),
		StorageRoot:   storageRoot,
	}, nil
}

func testConfig(dsn, storageRoot string) *config.Config {
	cfg := &config.Config{}
	cfg.Postgres.DSN = dsn
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.Issuer = "fantasy-league"
	cfg.JWT.DefaultTTL = time.Hour
	cfg.Storage.RootDir = storageRoot
	cfg.Storage.BatchSubfolder = "jugadores"
	cfg.Batch.MaxUploadBytes = 10 << 20
	cfg.Observability.ServiceName = "fantasy-league-test"
	cfg.Observability.Environment = "test"
	return cfg
}

// Reset empties every domain table.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	return TruncateTables(ctx, env.DB, "player_news", "players", "nfl_teams")
}

// Cleanup releases the database, container and storage root.
func (env *TestEnvironment) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating postgres container: %v", err)
		}
	}
	if env.StorageRoot != "" {
		os.RemoveAll(env.StorageRoot)
	}
	if env.CancelContext != nil {
		env.CancelContext()
	}
	log.Println("Test environment resources cleaned up.")
}

// TruncateTables empties tables and resets their identity sequences.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	query := "TRUNCATE TABLE "
	for i, table := range tables {
		query += fmt.Sprintf(`"%s"`, table)
		if i < len(tables)-1 {
			query += ", "
		}
	}
	query += " RESTART IDENTITY CASCADE"

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// WaitFor repeatedly calls check until it returns nil or timeout elapses.
func WaitFor(timeout, interval time.Duration, check func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := check(); err == nil {
				return nil
			}
			return fmt.Errorf("timed out waiting: %w", ctx.Err())
		case <-ticker.C:
			if err := check(); err == nil {
				return nil
			}
		}
	}
}

package nflteammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating nfl_teams table...")
		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS nfl_teams (
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL,
				city VARCHAR(100) NOT NULL,
				image_url VARCHAR(500),
				status VARCHAR(20) NOT NULL DEFAULT 'Active',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE UNIQUE INDEX IF NOT EXISTS ux_nfl_teams_name ON nfl_teams (lower(trim(name)));
		`); err != nil {
			return fmt.Errorf("failed to create nfl_teams table: %w", err)
		}
		fmt.Println("nfl_teams table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping nfl_teams table...")
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS nfl_teams;`); err != nil {
			return fmt.Errorf("failed to drop nfl_teams table: %w", err)
		}
		return nil
	})
}

package playermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating players table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id SERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					position VARCHAR(50) NOT NULL,
					nfl_team_id INTEGER NOT NULL REFERENCES nfl_teams(id) ON DELETE RESTRICT,
					image_url VARCHAR(500),
					thumbnail_url VARCHAR(500),
					status VARCHAR(20) NOT NULL DEFAULT 'Active',
					injury_designation VARCHAR(10),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ
				);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE UNIQUE INDEX IF NOT EXISTS ux_players_name_team_active
				ON players (lower(trim(name)), nfl_team_id)
				WHERE status = 'Active';
				CREATE INDEX IF NOT EXISTS idx_players_nfl_team_id ON players (nfl_team_id);
				CREATE INDEX IF NOT EXISTS idx_players_position ON players (upper(position));
			`); err != nil {
				return fmt.Errorf("failed to create players indexes: %w", err)
			}

			fmt.Println("players table created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players table...")
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS players;`); err != nil {
			return fmt.Errorf("failed to drop players table: %w", err)
		}
		return nil
	})
}

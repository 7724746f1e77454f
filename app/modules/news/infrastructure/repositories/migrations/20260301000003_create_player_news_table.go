package newsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating player_news table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS player_news (
				id SERIAL PRIMARY KEY,
				player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
				text VARCHAR(1000) NOT NULL,
				is_injury BOOLEAN NOT NULL DEFAULT FALSE,
				injury_summary VARCHAR(200),
				injury_designation VARCHAR(10),
				injury_description VARCHAR(1000),
				author_id VARCHAR(100) NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'Active',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_player_news_player_created ON player_news (player_id, created_at DESC);
		`)
		if err != nil {
			return fmt.Errorf("failed to create player_news table: %w", err)
		}

		fmt.Println("player_news table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping player_news table...")
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS player_news;`); err != nil {
			return fmt.Errorf("failed to drop player_news table: %w", err)
		}
		return nil
	})
}

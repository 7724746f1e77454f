package newsdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for player news persistence. A nil db
// means the repository's default connection.
type Repository interface {
	// GetAll returns every news item, newest first.
	GetAll(ctx context.Context, db bun.IDB) ([]News, error)

	// GetByID returns a single news item with its player.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*News, error)

	// GetByPlayer returns the news of one player, newest first.
	GetByPlayer(ctx context.Context, db bun.IDB, playerID int64) ([]News, error)

	// Create inserts a news item and fills its ID.
	Create(ctx context.Context, db bun.IDB, news *News) error
}

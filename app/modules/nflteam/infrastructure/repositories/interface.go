package nflteamdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for NFL team persistence. Every method
// takes the handle to run on; nil means the repository's default connection.
type Repository interface {
	// GetAll returns every team ordered by name.
	GetAll(ctx context.Context, db bun.IDB) ([]Team, error)

	// GetByID returns a single team.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Team, error)

	// ExistsByName reports whether a team with the name exists, ignoring case and surrounding blanks.
	ExistsByName(ctx context.Context, db bun.IDB, name string) (bool, error)

	// Create inserts a team and fills its ID.
	Create(ctx context.Context, db bun.IDB, team *Team) error

	// Delete removes a team. Teams with players cannot be deleted.
	Delete(ctx context.Context, db bun.IDB, id int64) error
}

package playerdb

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence. Every method takes
// the handle to run on; nil means the repository's default connection.
type Repository interface {
	// GetAll returns every player with its team, ordered by name.
	GetAll(ctx context.Context, db bun.IDB) ([]Player, error)

	// GetByID returns a player with its team.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Player, error)

	// GetByTeam returns every player of a team with the team loaded.
	GetByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error)

	// GetActivePlayersByTeam returns the non-deleted players of a team.
	GetActivePlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error)

	// GetByPosition returns players whose position code matches, ignoring case.
	GetByPosition(ctx context.Context, db bun.IDB, position string) ([]Player, error)

	// ExistsActiveByNameAndTeam reports whether an active player other than
	// excludeID uses the normalized name on the team.
	ExistsActiveByNameAndTeam(ctx context.Context, db bun.IDB, name string, teamID int64, excludeID int64) (bool, error)

	// Create inserts a player and fills its ID.
	Create(ctx context.Context, db bun.IDB, player *Player) error

	// Update persists the editable columns of a player.
	Update(ctx context.Context, db bun.IDB, player *Player) error

	// SetStatus changes a player's status and stamps updated_at.
	SetStatus(ctx context.Context, db bun.IDB, id int64, status string, at time.Time) error

	// UpdateInjuryDesignation overwrites the designation and stamps updated_at.
	UpdateInjuryDesignation(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error

	// Delete removes a player permanently.
	Delete(ctx context.Context, db bun.IDB, id int64) error
}

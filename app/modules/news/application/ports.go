package newsservice

import (
	"context"
	"time"

	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// PlayerStore is the part of the player repository news depends on.
type PlayerStore interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*playerdb.Player, error)
	UpdateInjuryDesignation(ctx context.Context, db bun.IDB, id int64, designation *string, at time.Time) error
}

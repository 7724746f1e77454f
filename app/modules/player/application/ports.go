package playerservice

import (
	"context"

	"github.com/uptrace/bun"
)

// TeamRef is the slice of an NFL team the player module needs.
type TeamRef struct {
	ID   int64
	Name string
	City string
}

// TeamLookup reads the NFL team catalog. GetTeamByID returns ErrTeamNotFound
// for unknown ids.
type TeamLookup interface {
	GetAllTeams(ctx context.Context, db bun.IDB) ([]TeamRef, error)
	GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*TeamRef, error)
}

// ArchiveStore persists uploaded artifacts. Save returns ErrArtifactExists
// when filename is already taken in subfolder.
type ArchiveStore interface {
	Save(ctx context.Context, subfolder, filename string, data []byte) error
}

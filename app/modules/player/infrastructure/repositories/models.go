package playerdb

import (
	"time"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Player is a persisted NFL player.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID                int64           `bun:"id,pk,autoincrement"`
	Name              string          `bun:"name,notnull"`
	Position          string          `bun:"position,notnull"`
	NFLTeamID         int64           `bun:"nfl_team_id,notnull"`
	ImageURL          *string         `bun:"image_url"`
	ThumbnailURL      *string         `bun:"thumbnail_url"`
	Status            string          `bun:"status,notnull,default:'Active'"`
	InjuryDesignation *string         `bun:"injury_designation"`
	CreatedAt         time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt         *time.Time      `bun:"updated_at"`
	Team              *nflteamdb.Team `bun:"rel:belongs-to,join:nfl_team_id=id"`
}

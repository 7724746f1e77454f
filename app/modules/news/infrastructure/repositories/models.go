package newsdb

import (
	"time"

	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// StatusActive is the default status of a news item.
const StatusActive = "Active"

// News is a report about a player, optionally carrying an injury update.
type News struct {
	bun.BaseModel `bun:"table:player_news,alias:n"`

	ID                int64            `bun:"id,pk,autoincrement"`
	PlayerID          int64            `bun:"player_id,notnull"`
	Text              string           `bun:"text,notnull"`
	IsInjury          bool             `bun:"is_injury,notnull"`
	InjurySummary     *string          `bun:"injury_summary"`
	InjuryDesignation *string          `bun:"injury_designation"`
	InjuryDescription *string          `bun:"injury_description"`
	AuthorID          string           `bun:"author_id,notnull"`
	Status            string           `bun:"status,notnull,default:'Active'"`
	CreatedAt         time.Time        `bun:"created_at,notnull,default:current_timestamp"`
	Player            *playerdb.Player `bun:"rel:belongs-to,join:player_id=id"`
}

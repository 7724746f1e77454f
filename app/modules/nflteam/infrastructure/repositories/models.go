package nflteamdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Team status values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Team is an NFL franchise players belong to.
type Team struct {
	bun.BaseModel `bun:"table:nfl_teams,alias:t"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull"`
	City      string    `bun:"city,notnull"`
	ImageURL  *string   `bun:"image_url"`
	Status    string    `bun:"status,notnull,default:'Active'"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

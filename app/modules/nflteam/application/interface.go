package nflteamservice

import (
	"context"
	"time"
)

// Service manages the NFL team catalog.
type Service interface {
	ListTeams(ctx context.Context) ([]TeamInfo, error)
	GetTeam(ctx context.Context, id int64) (*TeamInfo, error)
	CreateTeam(ctx context.Context, input CreateTeamInput) (*TeamInfo, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// TeamInfo is the read model returned to callers.
type TeamInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	City      string    `json:"ciudad"`
	ImageURL  *string   `json:"imagenUrl,omitempty"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// CreateTeamInput carries the fields for a new team.
type CreateTeamInput struct {
	Name     string  `json:"nombre"`
	City     string  `json:"ciudad"`
	ImageURL *string `json:"imagenUrl,omitempty"`
}

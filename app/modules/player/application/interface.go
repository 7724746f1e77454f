package playerservice

import (
	"context"
	"time"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
)

// Service manages the player catalog and batch roster imports.
type Service interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*PlayerInfo, error)
	GetPlayer(ctx context.Context, id int64) (*PlayerInfo, error)
	ListPlayers(ctx context.Context) ([]PlayerInfo, error)
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]PlayerInfo, error)
	ListPlayersByPosition(ctx context.Context, position string) ([]PlayerInfo, error)
	UpdatePlayer(ctx context.Context, id int64, input PlayerInput) (*PlayerInfo, error)
	DeactivatePlayer(ctx context.Context, id int64) error
	DeletePlayer(ctx context.Context, id int64) error

	// ImportBatch runs the all-or-nothing roster import. It always returns an
	// outcome and never an error.
	ImportBatch(ctx context.Context, fileName string, content []byte) *playerdomain.BatchOutcome
}

// PlayerInfo is the read model returned to callers.
type PlayerInfo struct {
	ID                int64      `json:"id"`
	Name              string     `json:"nombre"`
	Position          string     `json:"posicion"`
	NFLTeamID         int64      `json:"equipoNFLId"`
	NFLTeamName       string     `json:"nombreEquipoNFL"`
	NFLTeamCity       string     `json:"ciudadEquipoNFL"`
	ImageURL          *string    `json:"imagenUrl,omitempty"`
	ThumbnailURL      *string    `json:"thumbnailUrl,omitempty"`
	Status            string     `json:"estado"`
	InjuryDesignation *string    `json:"designacionLesion,omitempty"`
	CreatedAt         time.Time  `json:"fechaCreacion"`
	UpdatedAt         *time.Time `json:"fechaActualizacion,omitempty"`
}

// PlayerInput carries the editable fields of a player.
type PlayerInput struct {
	Name      string  `json:"nombre"`
	Position  string  `json:"posicion"`
	NFLTeamID int64   `json:"equipoNFLId"`
	ImageURL  *string `json:"imagenUrl,omitempty"`
}

package newsservice

import (
	"context"
	"time"
)

// Service manages player news and the injury designations they carry.
type Service interface {
	CreateNews(ctx context.Context, authorID string, input CreateNewsInput) (*NewsInfo, error)
	GetNews(ctx context.Context, id int64) (*NewsInfo, error)
	ListNews(ctx context.Context) ([]NewsInfo, error)
	ListPlayerNews(ctx context.Context, playerID int64) ([]NewsInfo, error)
	Designations() []DesignationInfo
}

// NewsInfo is the read model returned to callers.
type NewsInfo struct {
	ID                int64     `json:"id"`
	PlayerID          int64     `json:"jugadorId"`
	PlayerName        string    `json:"nombreJugador,omitempty"`
	Text              string    `json:"texto"`
	IsInjury          bool      `json:"esLesion"`
	InjurySummary     *string   `json:"resumenLesion,omitempty"`
	InjuryDesignation *string   `json:"designacionLesion,omitempty"`
	InjuryDescription *string   `json:"descripcionLesion,omitempty"`
	AuthorID          string    `json:"autorId"`
	CreatedAt         time.Time `json:"fechaCreacion"`
}

// CreateNewsInput carries the fields of a new report.
type CreateNewsInput struct {
	PlayerID          int64   `json:"jugadorId"`
	Text              string  `json:"texto"`
	IsInjury          bool    `json:"esLesion"`
	InjurySummary     *string `json:"resumenLesion,omitempty"`
	InjuryDesignation *string `json:"designacionLesion,omitempty"`
	InjuryDescription *string `json:"descripcionLesion,omitempty"`
}

// DesignationInfo describes one injury designation code.
type DesignationInfo struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
}

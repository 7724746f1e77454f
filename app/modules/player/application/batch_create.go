package playerservice

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/uptrace/bun"
)

// unknownTeamName is reported when a created player's team cannot be read back.
const unknownTeamName = "N/A"

// createAll persists every candidate in one transaction. Candidates must
// already be valid. Any failure rolls the whole batch back.
func (s *PlayerService) createAll(ctx context.Context, candidates []playerdomain.PlayerCandidate) ([]*playerdb.Player, error) {
	if s.db == nil {
		return nil, ErrNoTransaction
	}

	createdAt := s.now()
	var created []*playerdb.Player

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		created = make([]*playerdb.Player, 0, len(candidates))
		for i, c := range candidates {
			player := playerFromCandidate(c, createdAt)
			if err := s.repo.Create(ctx, tx, player); err != nil {
				return fmt.Errorf("failed to create player %d of %d (%q): %w", i+1, len(candidates), player.Name, err)
			}
			created = append(created, player)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch transaction rolled back: %w", err)
	}

	return created, nil
}

// summarizeCreated resolves team names after commit. Lookups are read-only
// and a failed lookup reports the team as N/A.
func (s *PlayerService) summarizeCreated(ctx context.Context, players []*playerdb.Player) []playerdomain.CreatedPlayerSummary {
	names := make(map[int64]string)
	summaries := make([]playerdomain.CreatedPlayerSummary, 0, len(players))

	for _, p := range players {
		name, ok := names[p.NFLTeamID]
		if !ok {
			name = unknownTeamName
			team, err := s.teams.GetTeamByID(ctx, nil, p.NFLTeamID)
			if err != nil {
				s.logger.WarnContext(ctx, "Failed to resolve team for created player",
					attr.ExtractCorrelationID(ctx),
					attr.Int64("team_id", p.NFLTeamID),
					attr.Error(err),
				)
			} else if team != nil {
				name = team.Name
			}
			names[p.NFLTeamID] = name
		}

		summaries = append(summaries, playerdomain.CreatedPlayerSummary{
			ID:          p.ID,
			Name:        p.Name,
			Position:    p.Position,
			NFLTeamName: name,
		})
	}
	return summaries
}

func playerFromCandidate(c playerdomain.PlayerCandidate, createdAt time.Time) *playerdb.Player {
	position := strings.TrimSpace(c.Position)
	if code, ok := playerdomain.ParsePosition(position); ok {
		position = string(code)
	}

	var imageURL *string
	if c.ImageURL != nil {
		if u := strings.TrimSpace(*c.ImageURL); u != "" {
			imageURL = &u
		}
	}

	return &playerdb.Player{
		Name:         strings.TrimSpace(c.Name),
		Position:     position,
		NFLTeamID:    int64(c.NFLTeamID),
		ImageURL:     imageURL,
		ThumbnailURL: imageURL,
		Status:       playerdomain.StatusActive,
		CreatedAt:    createdAt,
	}
}

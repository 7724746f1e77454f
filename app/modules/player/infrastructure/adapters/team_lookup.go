package adapters

import (
	"context"
	"errors"

	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// TeamLookupAdapter adapts the NFL team repository to the player service's TeamLookup port.
type TeamLookupAdapter struct {
	teams nflteamdb.Repository
}

func NewTeamLookupAdapter(teams nflteamdb.Repository) *TeamLookupAdapter {
	return &TeamLookupAdapter{teams: teams}
}

func (a *TeamLookupAdapter) GetAllTeams(ctx context.Context, db bun.IDB) ([]playerservice.TeamRef, error) {
	teams, err := a.teams.GetAll(ctx, db)
	if err != nil {
		return nil, err
	}
	refs := make([]playerservice.TeamRef, 0, len(teams))
	for _, t := range teams {
		refs = append(refs, playerservice.TeamRef{ID: t.ID, Name: t.Name, City: t.City})
	}
	return refs, nil
}

func (a *TeamLookupAdapter) GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*playerservice.TeamRef, error) {
	team, err := a.teams.GetByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, nflteamdb.ErrNotFound) {
			return nil, playerservice.ErrTeamNotFound
		}
		return nil, err
	}
	return &playerservice.TeamRef{ID: team.ID, Name: team.Name, City: team.City}, nil
}

var _ playerservice.TeamLookup = (*TeamLookupAdapter)(nil)

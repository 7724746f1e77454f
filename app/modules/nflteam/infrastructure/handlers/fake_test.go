package nflteamhandlers

import (
	"context"

	nflteamservice "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/application"
)

type FakeService struct {
	ListTeamsFunc  func(ctx context.Context) ([]nflteamservice.TeamInfo, error)
	GetTeamFunc    func(ctx context.Context, id int64) (*nflteamservice.TeamInfo, error)
	CreateTeamFunc func(ctx context.Context, input nflteamservice.CreateTeamInput) (*nflteamservice.TeamInfo, error)
	DeleteTeamFunc func(ctx context.Context, id int64) error
}

func (f *FakeService) ListTeams(ctx context.Context) ([]nflteamservice.TeamInfo, error) {
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []nflteamservice.TeamInfo{}, nil
}

func (f *FakeService) GetTeam(ctx context.Context, id int64) (*nflteamservice.TeamInfo, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, id)
	}
	return nil, nflteamservice.ErrTeamNotFound
}

func (f *FakeService) CreateTeam(ctx context.Context, input nflteamservice.CreateTeamInput) (*nflteamservice.TeamInfo, error) {
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, input)
	}
	return &nflteamservice.TeamInfo{ID: 1, Name: input.Name, City: input.City}, nil
}

func (f *FakeService) DeleteTeam(ctx context.Context, id int64) error {
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, id)
	}
	return nil
}

var _ nflteamservice.Service = (*FakeService)(nil)

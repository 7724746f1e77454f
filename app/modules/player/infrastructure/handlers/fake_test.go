package playerhandlers

import (
	"context"

	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
)

type FakeService struct {
	CreatePlayerFunc          func(ctx context.Context, input playerservice.PlayerInput) (*playerservice.PlayerInfo, error)
	GetPlayerFunc             func(ctx context.Context, id int64) (*playerservice.PlayerInfo, error)
	ListPlayersFunc           func(ctx context.Context) ([]playerservice.PlayerInfo, error)
	ListPlayersByTeamFunc     func(ctx context.Context, teamID int64) ([]playerservice.PlayerInfo, error)
	ListPlayersByPositionFunc func(ctx context.Context, position string) ([]playerservice.PlayerInfo, error)
	UpdatePlayerFunc          func(ctx context.Context, id int64, input playerservice.PlayerInput) (*playerservice.PlayerInfo, error)
	DeactivatePlayerFunc      func(ctx context.Context, id int64) error
	DeletePlayerFunc          func(ctx context.Context, id int64) error
	ImportBatchFunc           func(ctx context.Context, fileName string, content []byte) *playerdomain.BatchOutcome

	imports []string
}

func (f *FakeService) CreatePlayer(ctx context.Context, input playerservice.PlayerInput) (*playerservice.PlayerInfo, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, input)
	}
	return &playerservice.PlayerInfo{ID: 1, Name: input.Name, Position: input.Position, NFLTeamID: input.NFLTeamID}, nil
}

func (f *FakeService) GetPlayer(ctx context.Context, id int64) (*playerservice.PlayerInfo, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return nil, playerservice.ErrPlayerNotFound
}

func (f *FakeService) ListPlayers(ctx context.Context) ([]playerservice.PlayerInfo, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return []playerservice.PlayerInfo{}, nil
}

func (f *FakeService) ListPlayersByTeam(ctx context.Context, teamID int64) ([]playerservice.PlayerInfo, error) {
	if f.ListPlayersByTeamFunc != nil {
		return f.ListPlayersByTeamFunc(ctx, teamID)
	}
	return []playerservice.PlayerInfo{}, nil
}

func (f *FakeService) ListPlayersByPosition(ctx context.Context, position string) ([]playerservice.PlayerInfo, error) {
	if f.ListPlayersByPositionFunc != nil {
		return f.ListPlayersByPositionFunc(ctx, position)
	}
	return []playerservice.PlayerInfo{}, nil
}

func (f *FakeService) UpdatePlayer(ctx context.Context, id int64, input playerservice.PlayerInput) (*playerservice.PlayerInfo, error) {
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, id, input)
	}
	return &playerservice.PlayerInfo{ID: id, Name: input.Name}, nil
}

func (f *FakeService) DeactivatePlayer(ctx context.Context, id int64) error {
	if f.DeactivatePlayerFunc != nil {
		return f.DeactivatePlayerFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) DeletePlayer(ctx context.Context, id int64) error {
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) ImportBatch(ctx context.Context, fileName string, content []byte) *playerdomain.BatchOutcome {
	f.imports = append(f.imports, fileName)
	if f.ImportBatchFunc != nil {
		return f.ImportBatchFunc(ctx, fileName, content)
	}
	return &playerdomain.BatchOutcome{
		Success:        true,
		Errors:         []playerdomain.ValidationError{},
		CreatedPlayers: []playerdomain.CreatedPlayerSummary{},
		ArchivedAs:     "20260314_090507_Exito_" + fileName,
		State:          playerdomain.StateSucceeded,
	}
}

var _ playerservice.Service = (*FakeService)(nil)

package playerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/operations"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/results"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/validation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "PlayerService"

	maxNameLength = 100
	maxURLLength  = 500
)

// PlayerService implements the Service interface.
type PlayerService struct {
	repo         playerdb.Repository
	teams        TeamLookup
	archiver     *Archiver
	eventBus     eventbus.EventBus
	logger       *slog.Logger
	metrics      observability.ServiceMetrics
	batchMetrics observability.BatchMetrics
	tracer       trace.Tracer
	db           database.TxRunner

	exposeErrorDetails bool
	now                func() time.Time
}

var _ Service = (*PlayerService)(nil)

// NewPlayerService creates a new PlayerService. eventBus may be nil. When
// exposeErrorDetails is set, batch system failures include the underlying
// error text.
func NewPlayerService(
	repo playerdb.Repository,
	teams TeamLookup,
	archiver *Archiver,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db database.TxRunner,
	exposeErrorDetails bool,
) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	batchMetrics, _ := metrics.(observability.BatchMetrics)
	return &PlayerService{
		repo:               repo,
		teams:              teams,
		archiver:           archiver,
		eventBus:           eventBus,
		logger:             logger,
		metrics:            metrics,
		batchMetrics:       batchMetrics,
		tracer:             tracer,
		db:                 db,
		exposeErrorDetails: exposeErrorDetails,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// CreatePlayer validates and stores a single player.
func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (*PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "CreatePlayer", input.Name, func(ctx context.Context) (results.OperationResult[*PlayerInfo, error], error) {
		return operations.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*PlayerInfo, error], error) {
			return s.createPlayerLogic(ctx, db, input)
		})
	})
	return results.Unwrap(result, err)
}

func (s *PlayerService) createPlayerLogic(ctx context.Context, db bun.IDB, input PlayerInput) (results.OperationResult[*PlayerInfo, error], error) {
	fields, err := normalizePlayerInput(input)
	if err != nil {
		return results.FailureResult[*PlayerInfo, error](err), nil
	}

	team, err := s.teams.GetTeamByID(ctx, db, fields.teamID)
	if err != nil {
		return failOrError[*PlayerInfo](err)
	}

	exists, err := s.repo.ExistsActiveByNameAndTeam(ctx, db, fields.name, fields.teamID, 0)
	if err != nil {
		return results.OperationResult[*PlayerInfo, error]{}, err
	}
	if exists {
		return results.FailureResult[*PlayerInfo, error](ErrDuplicatePlayer), nil
	}

	player := &playerdb.Player{
		Name:         fields.name,
		Position:     fields.position,
		NFLTeamID:    fields.teamID,
		ImageURL:     fields.imageURL,
		ThumbnailURL: fields.imageURL,
		Status:       playerdomain.StatusActive,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, db, player); err != nil {
		if failure := mapWriteFailure(err); failure != nil {
			return results.FailureResult[*PlayerInfo, error](failure), nil
		}
		return results.OperationResult[*PlayerInfo, error]{}, fmt.Errorf("failed to create player: %w", err)
	}

	info := toPlayerInfo(player)
	info.NFLTeamName, info.NFLTeamCity = team.Name, team.City
	return results.SuccessResult[*PlayerInfo, error](&info), nil
}

// GetPlayer returns a player with its team.
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "GetPlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*PlayerInfo, error], error) {
		player, err := s.repo.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailureResult[*PlayerInfo, error](ErrPlayerNotFound), nil
			}
			return results.OperationResult[*PlayerInfo, error]{}, err
		}
		info := toPlayerInfo(player)
		return results.SuccessResult[*PlayerInfo, error](&info), nil
	})
	return results.Unwrap(result, err)
}

// ListPlayers returns every player ordered by name.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListPlayers", "all", func(ctx context.Context) (results.OperationResult[[]PlayerInfo, error], error) {
		players, err := s.repo.GetAll(ctx, nil)
		if err != nil {
			return results.OperationResult[[]PlayerInfo, error]{}, err
		}
		return results.SuccessResult[[]PlayerInfo, error](toPlayerInfos(players)), nil
	})
	return results.Unwrap(result, err)
}

// ListPlayersByTeam returns the players of an existing team.
func (s *PlayerService) ListPlayersByTeam(ctx context.Context, teamID int64) ([]PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListPlayersByTeam", strconv.FormatInt(teamID, 10), func(ctx context.Context) (results.OperationResult[[]PlayerInfo, error], error) {
		if _, err := s.teams.GetTeamByID(ctx, nil, teamID); err != nil {
			return failOrError[[]PlayerInfo](err)
		}
		players, err := s.repo.GetByTeam(ctx, nil, teamID)
		if err != nil {
			return results.OperationResult[[]PlayerInfo, error]{}, err
		}
		return results.SuccessResult[[]PlayerInfo, error](toPlayerInfos(players)), nil
	})
	return results.Unwrap(result, err)
}

// ListPlayersByPosition returns players at a position code, ignoring case.
func (s *PlayerService) ListPlayersByPosition(ctx context.Context, position string) ([]PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListPlayersByPosition", position, func(ctx context.Context) (results.OperationResult[[]PlayerInfo, error], error) {
		code, ok := playerdomain.ParsePosition(position)
		if !ok {
			return results.FailureResult[[]PlayerInfo, error](ErrInvalidPosition), nil
		}
		players, err := s.repo.GetByPosition(ctx, nil, string(code))
		if err != nil {
			return results.OperationResult[[]PlayerInfo, error]{}, err
		}
		return results.SuccessResult[[]PlayerInfo, error](toPlayerInfos(players)), nil
	})
	return results.Unwrap(result, err)
}

// UpdatePlayer replaces the editable fields of a player.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, input PlayerInput) (*PlayerInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "UpdatePlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*PlayerInfo, error], error) {
		return operations.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*PlayerInfo, error], error) {
			return s.updatePlayerLogic(ctx, db, id, input)
		})
	})
	return results.Unwrap(result, err)
}

func (s *PlayerService) updatePlayerLogic(ctx context.Context, db bun.IDB, id int64, input PlayerInput) (results.OperationResult[*PlayerInfo, error], error) {
	player, err := s.repo.GetByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			return results.FailureResult[*PlayerInfo, error](ErrPlayerNotFound), nil
		}
		return results.OperationResult[*PlayerInfo, error]{}, err
	}

	fields, err := normalizePlayerInput(input)
	if err != nil {
		return results.FailureResult[*PlayerInfo, error](err), nil
	}

	team, err := s.teams.GetTeamByID(ctx, db, fields.teamID)
	if err != nil {
		return failOrError[*PlayerInfo](err)
	}

	if player.Status == playerdomain.StatusActive {
		exists, err := s.repo.ExistsActiveByNameAndTeam(ctx, db, fields.name, fields.teamID, player.ID)
		if err != nil {
			return results.OperationResult[*PlayerInfo, error]{}, err
		}
		if exists {
			return results.FailureResult[*PlayerInfo, error](ErrDuplicatePlayer), nil
		}
	}

	now := s.now()
	player.Name = fields.name
	player.Position = fields.position
	player.NFLTeamID = fields.teamID
	player.ImageURL = fields.imageURL
	player.ThumbnailURL = fields.imageURL
	player.UpdatedAt = &now
	player.Team = nil

	if err := s.repo.Update(ctx, db, player); err != nil {
		if failure := mapWriteFailure(err); failure != nil {
			return results.FailureResult[*PlayerInfo, error](failure), nil
		}
		return results.OperationResult[*PlayerInfo, error]{}, fmt.Errorf("failed to update player: %w", err)
	}

	info := toPlayerInfo(player)
	info.NFLTeamName, info.NFLTeamCity = team.Name, team.City
	return results.SuccessResult[*PlayerInfo, error](&info), nil
}

// DeactivatePlayer soft-deletes a player.
func (s *PlayerService) DeactivatePlayer(ctx context.Context, id int64) error {
	result, err := operations.Run(ctx, s.telemetry(), "DeactivatePlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		if err := s.repo.SetStatus(ctx, nil, id, playerdomain.StatusInactive, s.now()); err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailureResult[bool, error](ErrPlayerNotFound), nil
			}
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](true), nil
	})
	_, err = results.Unwrap(result, err)
	return err
}

// DeletePlayer removes a player permanently.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	result, err := operations.Run(ctx, s.telemetry(), "DeletePlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		if err := s.repo.Delete(ctx, nil, id); err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailureResult[bool, error](ErrPlayerNotFound), nil
			}
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](true), nil
	})
	_, err = results.Unwrap(result, err)
	return err
}

type playerFields struct {
	name     string
	position string
	teamID   int64
	imageURL *string
}

func normalizePlayerInput(input PlayerInput) (playerFields, error) {
	fields := playerFields{
		name:   strings.TrimSpace(input.Name),
		teamID: input.NFLTeamID,
	}

	switch {
	case fields.name == "":
		return fields, ErrNameRequired
	case utf8.RuneCountInString(fields.name) > maxNameLength:
		return fields, ErrNameTooLong
	case strings.TrimSpace(input.Position) == "":
		return fields, ErrPositionRequired
	}

	code, ok := playerdomain.ParsePosition(input.Position)
	if !ok {
		return fields, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPosition, input.Position, playerdomain.PositionList())
	}
	fields.position = string(code)

	if fields.teamID <= 0 {
		return fields, ErrInvalidTeamID
	}

	if input.ImageURL != nil {
		if u := strings.TrimSpace(*input.ImageURL); u != "" {
			if !validation.IsHTTPURL(u) {
				return fields, ErrInvalidImageURL
			}
			if len(u) > maxURLLength {
				return fields, ErrImageURLTooLong
			}
			fields.imageURL = &u
		}
	}

	return fields, nil
}

func mapWriteFailure(err error) error {
	switch {
	case errors.Is(err, playerdb.ErrDuplicate):
		return ErrDuplicatePlayer
	case errors.Is(err, playerdb.ErrTeamReference):
		return ErrTeamNotFound
	default:
		return nil
	}
}

func toPlayerInfo(p *playerdb.Player) PlayerInfo {
	info := PlayerInfo{
		ID:                p.ID,
		Name:              p.Name,
		Position:          p.Position,
		NFLTeamID:         p.NFLTeamID,
		ImageURL:          p.ImageURL,
		ThumbnailURL:      p.ThumbnailURL,
		Status:            p.Status,
		InjuryDesignation: p.InjuryDesignation,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Team != nil {
		info.NFLTeamName = p.Team.Name
		info.NFLTeamCity = p.Team.City
	}
	return info
}

func toPlayerInfos(players []playerdb.Player) []PlayerInfo {
	out := make([]PlayerInfo, 0, len(players))
	for i := range players {
		out = append(out, toPlayerInfo(&players[i]))
	}
	return out
}

// failOrError reports domain errors as failure results and anything else as
// an infrastructure error.
func failOrError[S any](err error) (results.OperationResult[S, error], error) {
	if IsDomainError(err) {
		return results.FailureResult[S, error](err), nil
	}
	return results.OperationResult[S, error]{}, err
}

func (s *PlayerService) telemetry() operations.Telemetry {
	return operations.Telemetry{Service: serviceName, Logger: s.logger, Metrics: s.metrics, Tracer: s.tracer}
}

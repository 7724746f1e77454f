package nflteamservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/operations"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/results"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/validation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "NFLTeamService"

// NFLTeamService implements the Service interface.
type NFLTeamService struct {
	repo    nflteamdb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
	db      database.TxRunner
}

var _ Service = (*NFLTeamService)(nil)

// NewNFLTeamService creates a new NFLTeamService. db may be nil, in which
// case operations run without a transaction.
func NewNFLTeamService(
	repo nflteamdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db database.TxRunner,
) *NFLTeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NFLTeamService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

// ListTeams returns every team ordered by name.
func (s *NFLTeamService) ListTeams(ctx context.Context) ([]TeamInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListTeams", "all", func(ctx context.Context) (results.OperationResult[[]TeamInfo, error], error) {
		teams, err := s.repo.GetAll(ctx, nil)
		if err != nil {
			return results.OperationResult[[]TeamInfo, error]{}, err
		}
		out := make([]TeamInfo, 0, len(teams))
		for i := range teams {
			out = append(out, toTeamInfo(&teams[i]))
		}
		return results.SuccessResult[[]TeamInfo, error](out), nil
	})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

// GetTeam retrieves a team by id.
func (s *NFLTeamService) GetTeam(ctx context.Context, id int64) (*TeamInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "GetTeam", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*TeamInfo, error], error) {
		team, err := s.repo.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, nflteamdb.ErrNotFound) {
				return results.FailureResult[*TeamInfo, error](err), nil
			}
			return results.OperationResult[*TeamInfo, error]{}, err
		}
		info := toTeamInfo(team)
		return results.SuccessResult[*TeamInfo, error](&info), nil
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

// CreateTeam validates and stores a new team. Names are unique ignoring case.
func (s *NFLTeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*TeamInfo, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*TeamInfo, error], error) {
		return s.createTeamLogic(ctx, db, input)
	}

	result, err := operations.Run(ctx, s.telemetry(), "CreateTeam", input.Name, func(ctx context.Context) (results.OperationResult[*TeamInfo, error], error) {
		return operations.InTx(ctx, s.db, createTx)
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return *result.Success, nil
}

func (s *NFLTeamService) createTeamLogic(ctx context.Context, db bun.IDB, input CreateTeamInput) (results.OperationResult[*TeamInfo, error], error) {
	name := strings.TrimSpace(input.Name)
	city := strings.TrimSpace(input.City)

	if err := validateTeamInput(name, city, input.ImageURL); err != nil {
		return results.FailureResult[*TeamInfo, error](err), nil
	}

	exists, err := s.repo.ExistsByName(ctx, db, name)
	if err != nil {
		return results.OperationResult[*TeamInfo, error]{}, err
	}
	if exists {
		return results.FailureResult[*TeamInfo, error](ErrDuplicateName), nil
	}

	team := &nflteamdb.Team{
		Name:      name,
		City:      city,
		ImageURL:  trimmedOrNil(input.ImageURL),
		Status:    nflteamdb.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, db, team); err != nil {
		if errors.Is(err, nflteamdb.ErrDuplicateName) {
			return results.FailureResult[*TeamInfo, error](err), nil
		}
		return results.OperationResult[*TeamInfo, error]{}, fmt.Errorf("failed to create team: %w", err)
	}

	info := toTeamInfo(team)
	return results.SuccessResult[*TeamInfo, error](&info), nil
}

// DeleteTeam removes a team that no player references.
func (s *NFLTeamService) DeleteTeam(ctx context.Context, id int64) error {
	result, err := operations.Run(ctx, s.telemetry(), "DeleteTeam", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		if err := s.repo.Delete(ctx, nil, id); err != nil {
			if errors.Is(err, nflteamdb.ErrNotFound) || errors.Is(err, nflteamdb.ErrHasPlayers) {
				return results.FailureResult[bool, error](err), nil
			}
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](true), nil
	})
	if err != nil {
		return err
	}
	if result.IsFailure() {
		return *result.Failure
	}
	return nil
}

func validateTeamInput(name, city string, imageURL *string) error {
	switch {
	case name == "":
		return ErrNameRequired
	case utf8.RuneCountInString(name) > 100:
		return ErrNameTooLong
	case city == "":
		return ErrCityRequired
	case utf8.RuneCountInString(city) > 100:
		return ErrCityTooLong
	}
	if u := trimmedOrNil(imageURL); u != nil && !validation.IsHTTPURL(*u) {
		return ErrInvalidImageURL
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toTeamInfo(t *nflteamdb.Team) TeamInfo {
	return TeamInfo{
		ID:        t.ID,
		Name:      t.Name,
		City:      t.City,
		ImageURL:  t.ImageURL,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

func (s *NFLTeamService) telemetry() operations.Telemetry {
	return operations.Telemetry{Service: serviceName, Logger: s.logger, Metrics: s.metrics, Tracer: s.tracer}
}

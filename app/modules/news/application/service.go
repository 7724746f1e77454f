package newsservice

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
	newsdb "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/repositories"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/database"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/operations"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "NewsService"

	maxTextLength        = 1000
	maxSummaryLength     = 200
	maxDescriptionLength = 1000
)

// NewsService implements the Service interface.
type NewsService struct {
	repo     newsdb.Repository
	players  PlayerStore
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  observability.ServiceMetrics
	tracer   trace.Tracer
	db       database.TxRunner
	now      func() time.Time
}

var _ Service = (*NewsService)(nil)

// NewNewsService creates a new NewsService. eventBus and db may be nil.
func NewNewsService(
	repo newsdb.Repository,
	players PlayerStore,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db database.TxRunner,
) *NewsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsService{
		repo:     repo,
		players:  players,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateNews stores a report. Injury reports also overwrite the player's
// designation in the same transaction.
func (s *NewsService) CreateNews(ctx context.Context, authorID string, input CreateNewsInput) (*NewsInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "CreateNews", strconv.FormatInt(input.PlayerID, 10), func(ctx context.Context) (results.OperationResult[*NewsInfo, error], error) {
		return operations.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*NewsInfo, error], error) {
			return s.createNewsLogic(ctx, db, authorID, input)
		})
	})
	info, err := results.Unwrap(result, err)
	if err != nil {
		return nil, err
	}
	if info.IsInjury {
		s.publishDesignationUpdated(ctx, info)
	}
	return info, nil
}

func (s *NewsService) createNewsLogic(ctx context.Context, db bun.IDB, authorID string, input CreateNewsInput) (results.OperationResult[*NewsInfo, error], error) {
	news, err := normalizeNewsInput(authorID, input)
	if err != nil {
		return results.FailureResult[*NewsInfo, error](err), nil
	}

	player, err := s.players.GetByID(ctx, db, news.PlayerID)
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			return results.FailureResult[*NewsInfo, error](ErrPlayerNotFound), nil
		}
		return results.OperationResult[*NewsInfo, error]{}, err
	}
	if player.Status != playerdomain.StatusActive {
		return results.FailureResult[*NewsInfo, error](ErrPlayerInactive), nil
	}

	news.CreatedAt = s.now()
	if err := s.repo.Create(ctx, db, news); err != nil {
		if errors.Is(err, newsdb.ErrPlayerReference) {
			return results.FailureResult[*NewsInfo, error](ErrPlayerNotFound), nil
		}
		return results.OperationResult[*NewsInfo, error]{}, err
	}

	if news.IsInjury {
		if err := s.players.UpdateInjuryDesignation(ctx, db, player.ID, news.InjuryDesignation, news.CreatedAt); err != nil {
			return results.OperationResult[*NewsInfo, error]{}, fmt.Errorf("failed to update player designation: %w", err)
		}
	}

	news.Player = player
	info := toNewsInfo(news)
	return results.SuccessResult[*NewsInfo, error](&info), nil
}

// GetNews returns one report.
func (s *NewsService) GetNews(ctx context.Context, id int64) (*NewsInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "GetNews", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*NewsInfo, error], error) {
		news, err := s.repo.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, newsdb.ErrNotFound) {
				return results.FailureResult[*NewsInfo, error](ErrNewsNotFound), nil
			}
			return results.OperationResult[*NewsInfo, error]{}, err
		}
		info := toNewsInfo(news)
		return results.SuccessResult[*NewsInfo, error](&info), nil
	})
	return results.Unwrap(result, err)
}

// ListNews returns every report, newest first.
func (s *NewsService) ListNews(ctx context.Context) ([]NewsInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListNews", "all", func(ctx context.Context) (results.OperationResult[[]NewsInfo, error], error) {
		items, err := s.repo.GetAll(ctx, nil)
		if err != nil {
			return results.OperationResult[[]NewsInfo, error]{}, err
		}
		return results.SuccessResult[[]NewsInfo, error](toNewsInfos(items)), nil
	})
	return results.Unwrap(result, err)
}

// ListPlayerNews returns the reports of an existing player, newest first.
func (s *NewsService) ListPlayerNews(ctx context.Context, playerID int64) ([]NewsInfo, error) {
	result, err := operations.Run(ctx, s.telemetry(), "ListPlayerNews", strconv.FormatInt(playerID, 10), func(ctx context.Context) (results.OperationResult[[]NewsInfo, error], error) {
		if _, err := s.players.GetByID(ctx, nil, playerID); err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailureResult[[]NewsInfo, error](ErrPlayerNotFound), nil
			}
			return results.OperationResult[[]NewsInfo, error]{}, err
		}
		items, err := s.repo.GetByPlayer(ctx, nil, playerID)
		if err != nil {
			return results.OperationResult[[]NewsInfo, error]{}, err
		}
		return results.SuccessResult[[]NewsInfo, error](toNewsInfos(items)), nil
	})
	return results.Unwrap(result, err)
}

// Designations lists the injury codes in display order.
func (s *NewsService) Designations() []DesignationInfo {
	out := make([]DesignationInfo, 0, len(playerdomain.Designations))
	for _, d := range playerdomain.Designations {
		out = append(out, DesignationInfo{Code: string(d.Code), Description: d.Description})
	}
	return out
}

func (s *NewsService) publishDesignationUpdated(ctx context.Context, info *NewsInfo) {
	if s.eventBus == nil {
		return
	}
	msg, err := eventbus.NewMessage(ctx, eventbus.PlayerDesignationUpdatedPayload{
		PlayerID:    info.PlayerID,
		NewsID:      info.ID,
		Designation: info.InjuryDesignation,
		UpdatedAt:   info.CreatedAt,
	})
	if err == nil {
		err = s.eventBus.Publish(ctx, eventbus.PlayerDesignationUpdatedTopic, msg)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish designation update",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("player_id", info.PlayerID),
			attr.Error(err),
		)
	}
}

func normalizeNewsInput(authorID string, input CreateNewsInput) (*newsdb.News, error) {
	news := &newsdb.News{
		PlayerID: input.PlayerID,
		Text:     strings.TrimSpace(input.Text),
		IsInjury: input.IsInjury,
		AuthorID: strings.TrimSpace(authorID),
		Status:   newsdb.StatusActive,
	}

	switch {
	case news.AuthorID == "":
		return nil, ErrAuthorRequired
	case news.PlayerID <= 0:
		return nil, ErrPlayerNotFound
	case news.Text == "":
		return nil, ErrTextRequired
	case utf8.RuneCountInString(news.Text) > maxTextLength:
		return nil, ErrTextTooLong
	}

	if !news.IsInjury {
		return news, nil
	}

	summary := trimmed(input.InjurySummary)
	switch {
	case summary == nil:
		return nil, ErrSummaryRequired
	case utf8.RuneCountInString(*summary) > maxSummaryLength:
		return nil, ErrSummaryTooLong
	}
	news.InjurySummary = summary

	raw := ""
	if input.InjuryDesignation != nil {
		raw = *input.InjuryDesignation
	}
	code, ok := playerdomain.ParseDesignation(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDesignation, raw)
	}
	designation := string(code)
	news.InjuryDesignation = &designation

	if desc := trimmed(input.InjuryDescription); desc != nil {
		if utf8.RuneCountInString(*desc) > maxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		news.InjuryDescription = desc
	}
	return news, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func toNewsInfo(n *newsdb.News) NewsInfo {
	info := NewsInfo{
		ID:                n.ID,
		PlayerID:          n.PlayerID,
		Text:              n.Text,
		IsInjury:          n.IsInjury,
		InjurySummary:     n.InjurySummary,
		InjuryDesignation: n.InjuryDesignation,
		InjuryDescription: n.InjuryDescription,
		AuthorID:          n.AuthorID,
		CreatedAt:         n.CreatedAt,
	}
	if n.Player != nil {
		info.PlayerName = n.Player.Name
	}
	return info
}

func toNewsInfos(items []newsdb.News) []NewsInfo {
	out := make([]NewsInfo, 0, len(items))
	for i := range items {
		out = append(out, toNewsInfo(&items[i]))
	}
	return out
}

func (s *NewsService) telemetry() operations.Telemetry {
	return operations.Telemetry{Service: serviceName, Logger: s.logger, Metrics: s.metrics, Tracer: s.tracer}
}

package playerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/fantasy-league/app/eventbus"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player/application/parsers"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/operations"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/results"
	"github.com/google/uuid"
)

// batchRun is the per-call state of one import.
type batchRun struct {
	importID   string
	fileName   string
	content    []byte
	archivedAs string
}

// ImportBatch parses, validates and creates a roster as a single unit. Every
// path archives the upload exactly once and returns a populated outcome.
func (s *PlayerService) ImportBatch(ctx context.Context, fileName string, content []byte) *playerdomain.BatchOutcome {
	run := &batchRun{
		importID: uuid.NewString(),
		fileName: fileName,
		content:  content,
	}
	if attr.CorrelationID(ctx) == "" {
		ctx = attr.WithCorrelationID(ctx, run.importID)
	}

	var outcome *playerdomain.BatchOutcome
	_, err := operations.Run(ctx, s.telemetry(), "ImportBatch", fileName, func(ctx context.Context) (results.OperationResult[playerdomain.BatchState, playerdomain.BatchState], error) {
		outcome = s.runBatch(ctx, run)
		if outcome.Success {
			return results.SuccessResult[playerdomain.BatchState, playerdomain.BatchState](outcome.State), nil
		}
		return results.FailureResult[playerdomain.BatchState, playerdomain.BatchState](outcome.State), nil
	})
	if err != nil || outcome == nil {
		if err == nil {
			err = errors.New("batch import produced no outcome")
		}
		outcome = s.systemFailure(ctx, run, 0, err)
	}

	if s.batchMetrics != nil {
		s.batchMetrics.RecordBatchOutcome(ctx, string(outcome.State), outcome.TotalProcessed)
	}
	return outcome
}

func (s *PlayerService) runBatch(ctx context.Context, run *batchRun) *playerdomain.BatchOutcome {
	if len(run.content) == 0 {
		return s.reject(ctx, run, playerdomain.StateRejectedEmpty, 0,
			"El archivo está vacío o no es válido",
			fileError(playerdomain.CategoryEmpty, "Archivo vacío o no válido"))
	}

	candidates, err := parseRoster(run.fileName, run.content)
	if err != nil {
		s.logger.WarnContext(ctx, "Roster file could not be parsed",
			attr.ExtractCorrelationID(ctx),
			attr.String("import_id", run.importID),
			attr.String("file_name", run.fileName),
			attr.Error(err),
		)
		return s.reject(ctx, run, playerdomain.StateRejectedParse, 0,
			"Error al parsear el archivo: formato inválido",
			fileError(playerdomain.CategoryParse, fmt.Sprintf("Formato inválido: %v", err)))
	}

	if len(candidates) == 0 {
		return s.reject(ctx, run, playerdomain.StateRejectedEmpty, 0,
			"El archivo no contiene jugadores válidos",
			fileError(playerdomain.CategoryEmpty, "No se encontraron jugadores en el archivo"))
	}

	teamIDs, existing, err := s.loadValidationSnapshot(ctx, candidates)
	if err != nil {
		return s.systemFailure(ctx, run, len(candidates), err)
	}

	if errs := Validate(candidates, teamIDs, existing); len(errs) > 0 {
		return s.reject(ctx, run, playerdomain.StateRejectedValidation, len(candidates),
			fmt.Sprintf("Se encontraron %d errores. No se creó ningún jugador (operación todo-o-nada)", len(errs)),
			errs...)
	}

	created, err := s.safeCreateAll(ctx, candidates)
	if err != nil {
		return s.systemFailure(ctx, run, len(candidates), err)
	}

	// The players are committed from here on, so later steps must not turn
	// the outcome into a failure.
	summaries := []playerdomain.CreatedPlayerSummary{}
	s.afterCommit(ctx, run, "summarize", func() {
		summaries = s.summarizeCreated(ctx, created)
	})

	outcome := &playerdomain.BatchOutcome{
		Success:        true,
		Message:        fmt.Sprintf("Se crearon exitosamente %d jugadores", len(created)),
		TotalProcessed: len(candidates),
		TotalSucceeded: len(created),
		Errors:         []playerdomain.ValidationError{},
		CreatedPlayers: summaries,
		ArchivedAs:     s.archiveOnce(ctx, run, true),
		State:          playerdomain.StateSucceeded,
		ImportID:       run.importID,
	}

	s.afterCommit(ctx, run, "publish", func() {
		s.publishBatchImported(ctx, run, created)
	})
	return outcome
}

// afterCommit runs a post-commit step and logs a panic from it as a warning.
func (s *PlayerService) afterCommit(ctx context.Context, run *batchRun, step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WarnContext(ctx, "Post-commit step panicked",
				attr.ExtractCorrelationID(ctx),
				attr.String("import_id", run.importID),
				attr.String("step", step),
				attr.Any("panic", r),
			)
		}
	}()
	fn()
}

func parseRoster(fileName string, content []byte) ([]playerdomain.PlayerCandidate, error) {
	parser, err := parsers.NewFactory().GetParser(fileName)
	if err != nil {
		return nil, err
	}
	return parser.Parse(content)
}

// loadValidationSnapshot reads the team catalog once and the active players of
// each distinct existing team referenced by the batch.
func (s *PlayerService) loadValidationSnapshot(ctx context.Context, candidates []playerdomain.PlayerCandidate) (map[int]struct{}, map[int][]playerdomain.ExistingPlayerKey, error) {
	teams, err := s.teams.GetAllTeams(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}
	teamIDs := make(map[int]struct{}, len(teams))
	for _, t := range teams {
		teamIDs[int(t.ID)] = struct{}{}
	}

	existing := make(map[int][]playerdomain.ExistingPlayerKey)
	for _, c := range candidates {
		if _, ok := teamIDs[c.NFLTeamID]; !ok {
			continue
		}
		if _, fetched := existing[c.NFLTeamID]; fetched {
			continue
		}
		players, err := s.repo.GetActivePlayersByTeam(ctx, nil, int64(c.NFLTeamID))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load players for team %d: %w", c.NFLTeamID, err)
		}
		keys := make([]playerdomain.ExistingPlayerKey, 0, len(players))
		for _, p := range players {
			keys = append(keys, playerdomain.ExistingPlayerKey{ID: p.ID, Name: p.Name})
		}
		existing[c.NFLTeamID] = keys
	}

	return teamIDs, existing, nil
}

// safeCreateAll turns a panic inside the transaction into an error.
func (s *PlayerService) safeCreateAll(ctx context.Context, candidates []playerdomain.PlayerCandidate) (players []*playerdb.Player, err error) {
	defer func() {
		if r := recover(); r != nil {
			players = nil
			err = fmt.Errorf("panic during batch creation: %v", r)
		}
	}()
	return s.createAll(ctx, candidates)
}

func (s *PlayerService) reject(
	ctx context.Context,
	run *batchRun,
	state playerdomain.BatchState,
	processed int,
	message string,
	errs ...playerdomain.ValidationError,
) *playerdomain.BatchOutcome {
	return &playerdomain.BatchOutcome{
		Success:        false,
		Message:        message,
		TotalProcessed: processed,
		TotalFailed:    len(errs),
		Errors:         errs,
		CreatedPlayers: []playerdomain.CreatedPlayerSummary{},
		ArchivedAs:     s.archiveOnce(ctx, run, false),
		State:          state,
		ImportID:       run.importID,
	}
}

// systemFailure logs err in full and reports it generically unless details
// are exposed.
func (s *PlayerService) systemFailure(ctx context.Context, run *batchRun, processed int, err error) *playerdomain.BatchOutcome {
	s.logger.ErrorContext(ctx, "Batch import failed",
		attr.ExtractCorrelationID(ctx),
		attr.String("import_id", run.importID),
		attr.String("file_name", run.fileName),
		attr.Error(err),
	)

	message := "Error inesperado al procesar el archivo"
	entry := "Error del sistema"
	if s.exposeErrorDetails {
		message = fmt.Sprintf("%s: %v", message, err)
		entry = fmt.Sprintf("%s: %v", entry, err)
	}
	return s.reject(ctx, run, playerdomain.StateFailed, processed, message,
		fileError(playerdomain.CategorySystem, entry))
}

func (s *PlayerService) archiveOnce(ctx context.Context, run *batchRun, succeeded bool) string {
	if run.archivedAs == "" {
		run.archivedAs = s.archiver.Archive(ctx, run.fileName, run.content, succeeded)
	}
	return run.archivedAs
}

func (s *PlayerService) publishBatchImported(ctx context.Context, run *batchRun, created []*playerdb.Player) {
	if s.eventBus == nil {
		return
	}

	ids := make([]int64, 0, len(created))
	for _, p := range created {
		ids = append(ids, p.ID)
	}
	payload := eventbus.PlayersBatchImportedPayload{
		ImportID:     run.importID,
		FileName:     run.fileName,
		ArchivedAs:   run.archivedAs,
		PlayerIDs:    ids,
		TotalCreated: len(created),
		ImportedAt:   s.now(),
	}

	msg, err := eventbus.NewMessage(ctx, payload)
	if err == nil {
		err = s.eventBus.Publish(ctx, eventbus.PlayersBatchImportedTopic, msg)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish batch imported event",
			attr.ExtractCorrelationID(ctx),
			attr.String("import_id", run.importID),
			attr.Error(err),
		)
	}
}

// fileError is an error entry that belongs to the whole file, not a candidate.
func fileError(category playerdomain.ErrorCategory, msg string) playerdomain.ValidationError {
	return playerdomain.ValidationError{Message: msg, Category: category}
}

package playerhandlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
	"github.com/Black-And-White-Club/fantasy-league/app/modules/player/application/parsers"
	playerdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/player/domain"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/httpx"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

const uploadField = "file"

// Handlers serves the player HTTP API.
type Handlers struct {
	service        playerservice.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewHandlers creates the player handlers. Batch uploads larger than
// maxUploadBytes are refused.
func NewHandlers(service playerservice.Service, logger *slog.Logger, maxUploadBytes int64) *Handlers {
	return &Handlers{service: service, logger: logger, maxUploadBytes: maxUploadBytes}
}

// Routes mounts the player endpoints. writeGuard protects mutations.
func (h *Handlers) Routes(r chi.Router, writeGuard ...func(http.Handler) http.Handler) {
	r.Get("/", h.HandleListPlayers)
	r.Get("/{id}", h.HandleGetPlayer)
	r.Get("/team/{teamID}", h.HandleListByTeam)
	r.Get("/position/{position}", h.HandleListByPosition)
	r.Group(func(r chi.Router) {
		r.Use(writeGuard...)
		r.Post("/", h.HandleCreatePlayer)
		r.Post("/batch", h.HandleImportBatch)
		r.Put("/{id}", h.HandleUpdatePlayer)
		r.Delete("/{id}", h.HandleDeactivatePlayer)
		r.Delete("/{id}/permanent", h.HandleDeletePlayer)
	})
}

func (h *Handlers) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

func (h *Handlers) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	player, err := h.service.GetPlayer(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *Handlers) HandleListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.IDParam(r, "teamID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	players, err := h.service.ListPlayersByTeam(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

func (h *Handlers) HandleListByPosition(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayersByPosition(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

func (h *Handlers) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input playerservice.PlayerInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	player, err := h.service.CreatePlayer(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, player)
}

func (h *Handlers) HandleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	var input playerservice.PlayerInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	player, err := h.service.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *Handlers) HandleDeactivatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeactivatePlayer(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeletePlayer(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleImportBatch accepts a roster file in the multipart field "file" and
// answers with the batch outcome.
func (h *Handlers) HandleImportBatch(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteJSON(w, http.StatusRequestEntityTooLarge, tooLargeOutcome(tooLarge.Limit))
			return
		}
		// A request without the file part is treated as an empty upload.
		h.logger.WarnContext(r.Context(), "Batch upload without file part",
			attr.ExtractCorrelationID(r.Context()),
			attr.Error(err),
		)
		h.writeOutcome(w, r, h.service.ImportBatch(r.Context(), "", nil))
		return
	}
	defer file.Close()

	if !parsers.Supported(header.Filename) {
		httpx.WriteJSON(w, http.StatusBadRequest, unsupportedFileOutcome(header.Filename))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteJSON(w, http.StatusRequestEntityTooLarge, tooLargeOutcome(tooLarge.Limit))
			return
		}
		httpx.WriteJSON(w, http.StatusBadRequest, rejectedOutcome(playerdomain.StateRejectedParse, playerdomain.CategoryParse,
			"Error al leer el archivo", "No se pudo leer el archivo recibido"))
		return
	}

	h.writeOutcome(w, r, h.service.ImportBatch(r.Context(), header.Filename, content))
}

func (h *Handlers) writeOutcome(w http.ResponseWriter, r *http.Request, outcome *playerdomain.BatchOutcome) {
	h.logger.InfoContext(r.Context(), "Batch import finished",
		attr.ExtractCorrelationID(r.Context()),
		attr.String("import_id", outcome.ImportID),
		attr.String("state", string(outcome.State)),
		attr.String("archived_as", outcome.ArchivedAs),
	)
	httpx.WriteJSON(w, StatusForOutcome(outcome), outcome)
}

// StatusForOutcome maps a batch terminal state to its HTTP status.
func StatusForOutcome(outcome *playerdomain.BatchOutcome) int {
	switch outcome.State {
	case playerdomain.StateSucceeded:
		return http.StatusOK
	case playerdomain.StateRejectedValidation, playerdomain.StateRejectedParse, playerdomain.StateRejectedEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// rejectedOutcome is the outcome for uploads turned away before reaching the
// service. Nothing is archived for them.
func rejectedOutcome(state playerdomain.BatchState, category playerdomain.ErrorCategory, message, entry string) *playerdomain.BatchOutcome {
	return &playerdomain.BatchOutcome{
		Success: false,
		Message: message,
		Errors: []playerdomain.ValidationError{
			{Message: entry, Category: category},
		},
		TotalFailed:    1,
		CreatedPlayers: []playerdomain.CreatedPlayerSummary{},
		State:          state,
	}
}

func unsupportedFileOutcome(fileName string) *playerdomain.BatchOutcome {
	return rejectedOutcome(playerdomain.StateRejectedParse, playerdomain.CategoryParse,
		"Error al parsear el archivo: formato inválido",
		fmt.Sprintf("Formato de archivo no soportado: %q. Formatos permitidos: .json, .csv, .xlsx, .xls", fileName))
}

func tooLargeOutcome(limit int64) *playerdomain.BatchOutcome {
	return rejectedOutcome(playerdomain.StateRejectedParse, playerdomain.CategoryParse,
		"El archivo excede el tamaño máximo permitido",
		fmt.Sprintf("El archivo supera el límite de %d bytes", limit))
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, playerservice.ErrPlayerNotFound), errors.Is(err, playerservice.ErrTeamNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, playerservice.ErrDuplicatePlayer):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case playerservice.IsDomainError(err):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Player request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("path", r.URL.Path),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

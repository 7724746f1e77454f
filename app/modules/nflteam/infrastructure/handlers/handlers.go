package nflteamhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	nflteamservice "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/application"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/httpx"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

// Handlers serves the NFL team HTTP API.
type Handlers struct {
	service nflteamservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the team handlers.
func NewHandlers(service nflteamservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the team endpoints. writeGuard protects mutations.
func (h *Handlers) Routes(r chi.Router, writeGuard ...func(http.Handler) http.Handler) {
	r.Get("/", h.HandleListTeams)
	r.Get("/{id}", h.HandleGetTeam)
	r.Group(func(r chi.Router) {
		r.Use(writeGuard...)
		r.Post("/", h.HandleCreateTeam)
		r.Delete("/{id}", h.HandleDeleteTeam)
	})
}

func (h *Handlers) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

func (h *Handlers) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	team, err := h.service.GetTeam(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, team)
}

func (h *Handlers) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var input nflteamservice.CreateTeamInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	team, err := h.service.CreateTeam(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, team)
}

func (h *Handlers) HandleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeleteTeam(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, nflteamservice.ErrTeamNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, nflteamservice.ErrDuplicateName), errors.Is(err, nflteamservice.ErrTeamHasPlayers):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case nflteamservice.IsDomainError(err):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Team request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

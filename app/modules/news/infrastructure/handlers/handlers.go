package newshandlers

import (
	"errors"
	"log/slog"
	"net/http"

	newsservice "github.com/Black-And-White-Club/fantasy-league/app/modules/news/application"
	authhandlers "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/httpx"
	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

// Handlers serves the player news HTTP API.
type Handlers struct {
	service newsservice.Service
	logger  *slog.Logger
}

// NewHandlers creates the news handlers.
func NewHandlers(service newsservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the news endpoints. writeGuard must authenticate the caller
// so the author can be read from the token.
func (h *Handlers) Routes(r chi.Router, writeGuard ...func(http.Handler) http.Handler) {
	r.Get("/", h.HandleListNews)
	r.Get("/designations", h.HandleListDesignations)
	r.Get("/player/{playerID}", h.HandleListPlayerNews)
	r.Get("/{id}", h.HandleGetNews)
	r.Group(func(r chi.Router) {
		r.Use(writeGuard...)
		r.Post("/", h.HandleCreateNews)
	})
}

func (h *Handlers) HandleListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListNews(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) HandleListDesignations(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.service.Designations())
}

func (h *Handlers) HandleListPlayerNews(w http.ResponseWriter, r *http.Request) {
	playerID, err := httpx.IDParam(r, "playerID")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.service.ListPlayerNews(r.Context(), playerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.service.GetNews(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handlers) HandleCreateNews(w http.ResponseWriter, r *http.Request) {
	claims, ok := authhandlers.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var input newsservice.CreateNewsInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.service.CreateNews(r.Context(), claims.UserID, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, newsservice.ErrNewsNotFound), errors.Is(err, newsservice.ErrPlayerNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, newsservice.ErrPlayerInactive):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case newsservice.IsDomainError(err):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "News request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

package form

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentora/backoffice/internal/platform/httpx"
)

// Factory builds a controller for one form kind. entityID is empty in
// create mode and carries the record ID in edit mode.
type Factory func(ctx context.Context, entityID string) (*Controller, error)

// Handler exposes the form session endpoints shared by every module: the
// dashboard opens a form, streams field edits into it, and submits it.
type Handler struct {
	logger    *slog.Logger
	manager   *Manager
	factories map[string]Factory
}

// NewHandler builds a Handler around the given instance manager.
func NewHandler(logger *slog.Logger, manager *Manager) *Handler {
	return &Handler{
		logger:    logger,
		manager:   manager,
		factories: make(map[string]Factory),
	}
}

// Register binds a form kind (e.g. "payment.create") to its factory.
func (h *Handler) Register(kind string, factory Factory) {
	h.factories[kind] = factory
}

// MountRoutes registers the form session routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/{kind}", h.open)
	r.Get("/sessions/{id}", h.state)
	r.Post("/sessions/{id}/fields", h.setField)
	r.Post("/sessions/{id}/submit", h.submit)
	r.Post("/sessions/{id}/reset", h.reset)
	r.Delete("/sessions/{id}", h.close)
}

type openRequest struct {
	EntityID string `json:"entity_id"`
}

type openResponse struct {
	FormID string `json:"form_id"`
	State  State  `json:"state"`
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	factory, ok := h.factories[kind]
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "Unknown Form", "no form kind "+kind)
		return
	}

	var req openRequest
	if r.ContentLength > 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
			return
		}
	}

	ctrl, err := factory(r.Context(), req.EntityID)
	if err != nil {
		h.logger.Warn("open form", slog.String("kind", kind), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	id := h.manager.Open(ctrl)
	httpx.JSON(w, http.StatusCreated, openResponse{FormID: id, State: ctrl.State()})
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, ctrl.State())
}

type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Blur  bool   `json:"blur"`
}

func (h *Handler) setField(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req setFieldRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if req.Field == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "field is required")
		return
	}
	ctrl.SetField(r.Context(), req.Field, req.Value, req.Blur)
	httpx.JSON(w, http.StatusOK, ctrl.State())
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	state := ctrl.Submit(r.Context())
	status := http.StatusOK
	if state.Outcome == OutcomeIdle && len(state.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	httpx.JSON(w, status, state)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	ctrl.Reset()
	httpx.JSON(w, http.StatusOK, ctrl.State())
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	h.manager.Close(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Controller, bool) {
	ctrl, ok := h.manager.Get(chi.URLParam(r, "id"))
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "form session expired or unknown")
		return nil, false
	}
	return ctrl, true
}

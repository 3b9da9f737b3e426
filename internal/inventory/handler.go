package inventory

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dentora/backoffice/internal/platform/httpx"
	"github.com/dentora/backoffice/internal/shared"
)

// Handler exposes the stock movement ledger endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/movements", h.list)
}

type listResponse struct {
	Items      []Movement        `json:"items"`
	Totals     Totals            `json:"totals"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	items, totals, pagination, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		h.logger.Warn("list stock movements", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Movement{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Items: items, Totals: totals, Pagination: pagination})
}

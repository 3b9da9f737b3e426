package invoices

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dentora/backoffice/internal/platform/httpx"
	"github.com/dentora/backoffice/internal/shared"
)

// Handler exposes the invoice screens' JSON endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers customer invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listCustomer)
	r.Get("/{id}", h.showCustomer)
	r.Post("/{id}/status", h.changeCustomerStatus)
}

// MountSupplierRoutes registers supplier invoice routes.
func (h *Handler) MountSupplierRoutes(r chi.Router) {
	r.Get("/", h.listSupplier)
	r.Get("/{id}", h.showSupplier)
	r.Post("/{id}/status", h.changeSupplierStatus)
}

type customerListResponse struct {
	Items      []CustomerInvoice `json:"items"`
	Pagination shared.Pagination `json:"pagination"`
}

type supplierListResponse struct {
	Items      []SupplierInvoice `json:"items"`
	Pagination shared.Pagination `json:"pagination"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) listCustomer(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	items, pagination, err := h.service.ListCustomer(r.Context(), page, perPage)
	if err != nil {
		h.logger.Warn("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []CustomerInvoice{}
	}
	httpx.JSON(w, http.StatusOK, customerListResponse{Items: items, Pagination: pagination})
}

func (h *Handler) showCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inv, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) changeCustomerStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Status == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "status is required")
		return
	}
	if err := h.service.ChangeCustomerStatus(r.Context(), id, req.Status); err != nil {
		h.logger.Warn("change invoice status", slog.Int64("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSupplier(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	items, pagination, err := h.service.ListSupplier(r.Context(), page, perPage)
	if err != nil {
		h.logger.Warn("list supplier invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []SupplierInvoice{}
	}
	httpx.JSON(w, http.StatusOK, supplierListResponse{Items: items, Pagination: pagination})
}

func (h *Handler) showSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inv, err := h.service.GetSupplier(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) changeSupplierStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Status == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "status is required")
		return
	}
	if err := h.service.ChangeSupplierStatus(r.Context(), id, req.Status); err != nil {
		h.logger.Warn("change supplier invoice status", slog.Int64("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid id")
		return 0, false
	}
	return id, true
}

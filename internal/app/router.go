package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dentora/backoffice/internal/auth"
	"github.com/dentora/backoffice/internal/backups"
	"github.com/dentora/backoffice/internal/categories"
	"github.com/dentora/backoffice/internal/form"
	"github.com/dentora/backoffice/internal/inventory"
	"github.com/dentora/backoffice/internal/invoices"
	"github.com/dentora/backoffice/internal/payments"
	"github.com/dentora/backoffice/internal/procurement"
	"github.com/dentora/backoffice/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler        *auth.Handler
	PaymentsHandler    *payments.Handler
	InvoicesHandler    *invoices.Handler
	ProcurementHandler *procurement.Handler
	CategoriesHandler  *categories.Handler
	InventoryHandler   *inventory.Handler
	BackupsHandler     *backups.Handler
	FormHandler        *form.Handler
}

// NewRouter constructs the chi.Router with back office defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	// Everything behind the dashboard requires an upstream token.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Route("/payments", params.PaymentsHandler.MountRoutes)
		r.Route("/invoices", params.InvoicesHandler.MountRoutes)
		r.Route("/supplier-invoices", params.InvoicesHandler.MountSupplierRoutes)
		r.Route("/suppliers", params.ProcurementHandler.MountRoutes)
		r.Route("/categories", params.CategoriesHandler.MountRoutes)
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/backups", params.BackupsHandler.MountRoutes)
		r.Route("/forms", params.FormHandler.MountRoutes)
	})

	return r
}

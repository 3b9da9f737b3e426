package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dentora/backoffice/internal/app"
	"github.com/dentora/backoffice/internal/auth"
	"github.com/dentora/backoffice/internal/backups"
	"github.com/dentora/backoffice/internal/categories"
	"github.com/dentora/backoffice/internal/form"
	"github.com/dentora/backoffice/internal/gateway"
	"github.com/dentora/backoffice/internal/inventory"
	"github.com/dentora/backoffice/internal/invoices"
	"github.com/dentora/backoffice/internal/payments"
	"github.com/dentora/backoffice/internal/procurement"
	"github.com/dentora/backoffice/internal/shared"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "dentora_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	gw := gateway.NewClient(cfg.APIBaseURL, auth.SessionCredentials{})

	authService := auth.NewService(gw)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager)

	paymentsService := payments.NewService(gw)
	invoicesService := invoices.NewService(gw)
	procurementService := procurement.NewService(gw)
	categoriesService := categories.NewService(gw)
	inventoryService := inventory.NewService(gw)
	backupsService := backups.NewService(gw)

	// One checker serves every form; each module contributes its
	// discriminator paths.
	resources := make(map[string]string)
	for disc, path := range payments.LinkResources() {
		resources[disc] = path
	}
	for disc, path := range invoices.LinkResources() {
		resources[disc] = path
	}
	checker := form.NewChecker(gw, resources)

	formManager := form.NewManager(cfg.FormTTL)
	formHandler := form.NewHandler(logger, formManager)
	paymentsService.RegisterForms(formHandler, checker)
	invoicesService.RegisterForms(formHandler, checker)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		SessionManager:     sessionManager,
		CSRFManager:        csrfManager,
		AuthHandler:        authHandler,
		PaymentsHandler:    payments.NewHandler(logger, paymentsService),
		InvoicesHandler:    invoices.NewHandler(logger, invoicesService),
		ProcurementHandler: procurement.NewHandler(logger, procurementService),
		CategoriesHandler:  categories.NewHandler(logger, categoriesService),
		InventoryHandler:   inventory.NewHandler(logger, inventoryService),
		BackupsHandler:     backups.NewHandler(logger, backupsService),
		FormHandler:        formHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

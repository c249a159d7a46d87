package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/bistro/internal/app"
	"github.com/MrJamesThe3rd/bistro/internal/config"
	bistroHttp "github.com/MrJamesThe3rd/bistro/internal/http"
	archiveHandler "github.com/MrJamesThe3rd/bistro/internal/http/archive"
	"github.com/MrJamesThe3rd/bistro/internal/http/auth"
	dashboardHandler "github.com/MrJamesThe3rd/bistro/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/bistro/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/bistro/internal/http/importcsv"
	inventoryHandler "github.com/MrJamesThe3rd/bistro/internal/http/inventory"
	maintenanceHandler "github.com/MrJamesThe3rd/bistro/internal/http/maintenance"
	matchingHandler "github.com/MrJamesThe3rd/bistro/internal/http/matching"
	personnelHandler "github.com/MrJamesThe3rd/bistro/internal/http/personnel"
	purchaseHandler "github.com/MrJamesThe3rd/bistro/internal/http/purchase"
	salesHandler "github.com/MrJamesThe3rd/bistro/internal/http/sales"
	settingsHandler "github.com/MrJamesThe3rd/bistro/internal/http/settings"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, closeDB, err := app.OpenStore(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeDB()

	if cfg.Security.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}

	authenticator, err := auth.New(
		cfg.Security.AccessPIN,
		cfg.Security.ConfirmPIN,
		cfg.Security.JWTSecret,
		cfg.Security.TokenTTL,
	)
	if err != nil {
		slog.Error("failed to set up authentication", "error", err)
		os.Exit(1)
	}

	svc := app.New(db, cfg.Settings.SickAllowance)

	handlers := bistroHttp.Handlers{
		Auth:        auth.NewHandler(authenticator),
		Personnel:   personnelHandler.NewHandler(svc.Personnel),
		Purchases:   purchaseHandler.NewHandler(svc.Purchases),
		Maintenance: maintenanceHandler.NewHandler(svc.Maintenance),
		Sales:       salesHandler.NewHandler(svc.Sales),
		Inventory:   inventoryHandler.NewHandler(svc.Inventory),
		Dashboard:   dashboardHandler.NewHandler(svc.Reports, svc.Dashboard, svc.Export),
		Archives:    archiveHandler.NewHandler(svc.Archives, svc.Reports, svc.Export, archiveHandler.WithWorkbookDir(cfg.Export.Dir)),
		Settings:    settingsHandler.NewHandler(svc.Settings),
		Export:      exportHandler.NewHandler(svc.Export, svc.Dashboard),
		Import:      importHandler.NewHandler(svc.Importer),
		Aliases:     matchingHandler.NewHandler(svc.Aliases),
	}

	router := bistroHttp.New(authenticator, handlers, bistroHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "storage", cfg.Storage.Driver)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

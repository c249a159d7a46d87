// Package app wires the services shared by the API server and the terminal UI.
package app

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	archiveStore "github.com/MrJamesThe3rd/bistro/internal/archive/store"
	"github.com/MrJamesThe3rd/bistro/internal/config"
	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	dashboardStore "github.com/MrJamesThe3rd/bistro/internal/dashboard/store"
	"github.com/MrJamesThe3rd/bistro/internal/database"
	"github.com/MrJamesThe3rd/bistro/internal/export"
	"github.com/MrJamesThe3rd/bistro/internal/importer"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/bistro/internal/inventory/store"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	maintenanceStore "github.com/MrJamesThe3rd/bistro/internal/maintenance/store"
	"github.com/MrJamesThe3rd/bistro/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/bistro/internal/matching/store"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	personnelStore "github.com/MrJamesThe3rd/bistro/internal/personnel/store"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	purchaseStore "github.com/MrJamesThe3rd/bistro/internal/purchase/store"
	"github.com/MrJamesThe3rd/bistro/internal/report"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
	salesStore "github.com/MrJamesThe3rd/bistro/internal/sales/store"
	"github.com/MrJamesThe3rd/bistro/internal/settings"
	settingsStore "github.com/MrJamesThe3rd/bistro/internal/settings/store"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/storage/memory"
	"github.com/MrJamesThe3rd/bistro/internal/storage/postgres"
	"github.com/MrJamesThe3rd/bistro/internal/storage/sqlite"
)

type Services struct {
	Settings    *settings.Service
	Personnel   *personnel.Service
	Inventory   *inventory.Service
	Purchases   *purchase.Service
	Maintenance *maintenance.Service
	Sales       *sales.Service
	Reports     *report.Service
	Dashboard   *dashboard.Service
	Archives    *archive.Service
	Export      *export.Service
	Importer    *importer.Service
	Aliases     *matching.Service
}

// New builds every service on top of one store so that a reset commits or
// rolls back across all collections together.
func New(db storage.Store, sickAllowance int) *Services {
	var (
		settingsService    = settings.NewService(settingsStore.New(db), settings.WithDefaultAllowance(sickAllowance))
		personnelService   = personnel.NewService(personnelStore.New(db), settingsService)
		inventoryService   = inventory.NewService(inventoryStore.New(db))
		purchaseService    = purchase.NewService(purchaseStore.New(db), inventoryService, db)
		maintenanceService = maintenance.NewService(maintenanceStore.New(db), db)
		salesService       = sales.NewService(salesStore.New(db), inventoryService, db)
		reportService      = report.NewService(personnelService, purchaseService, maintenanceService, salesService)
		dashboardService   = dashboard.NewService(dashboardStore.New(db))
		matchingService    = matching.NewService(matchingStore.New(db))
	)

	archiveService := archive.NewService(
		archiveStore.New(db),
		reportService,
		dashboardService,
		db,
		archive.Step{Name: "employees", Closer: personnelService},
		archive.Step{Name: "purchases", Closer: purchaseService},
		archive.Step{Name: "maintenance", Closer: maintenanceService},
		archive.Step{Name: "sales", Closer: salesService},
		archive.Step{Name: "settings", Closer: settingsService},
	)

	return &Services{
		Settings:    settingsService,
		Personnel:   personnelService,
		Inventory:   inventoryService,
		Purchases:   purchaseService,
		Maintenance: maintenanceService,
		Sales:       salesService,
		Reports:     reportService,
		Dashboard:   dashboardService,
		Archives:    archiveService,
		Export:      export.NewService(reportService, purchaseService, maintenanceService, salesService, inventoryService),
		Importer:    importer.NewService(purchaseService, salesService, db, importer.WithMatcher(matchingService)),
		Aliases:     matchingService,
	}
}

// OpenStore opens the configured backend and creates its schema. The returned
// func releases the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), func() error { return nil }, nil

	case config.DriverPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, nil, err
		}

		s := postgres.New(db)
		if err := s.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		return s, db.Close, nil

	case config.DriverSQLite:
		db, err := database.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("getting sqlite handle: %w", err)
		}

		s := sqlite.New(db)
		if err := s.Migrate(ctx); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}

		return s, sqlDB.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

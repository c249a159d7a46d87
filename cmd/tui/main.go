package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/bistro/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/bistro/internal/app"
	"github.com/MrJamesThe3rd/bistro/internal/config"
	"github.com/MrJamesThe3rd/bistro/internal/http/auth"
)

type model struct {
	svc         *app.Services
	auth        *auth.Authenticator
	workbookDir string

	currentView View

	lockView      view.LockModel
	dashboardView view.DashboardModel
	personnelView view.PersonnelModel
	importView    view.ImportModel
	resetView     view.ResetModel
	archivesView  view.ArchivesModel
	exportView    view.ExportModel
}

type View int

const (
	ViewLock      View = -1
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewPersonnel View = 2
	ViewImport    View = 3
	ViewReset     View = 4
	ViewArchives  View = 5
	ViewExport    View = 6
)

func initialModel(svc *app.Services, authenticator *auth.Authenticator, workbookDir string) model {
	return model{
		svc:         svc,
		auth:        authenticator,
		workbookDir: workbookDir,
		currentView: ViewLock,
		lockView:    view.NewLockModel(authenticator),
	}
}

func (m model) Init() tea.Cmd {
	return m.lockView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.svc.Reports, m.svc.Dashboard)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewPersonnel
				m.personnelView = view.NewPersonnelModel(m.svc.Personnel)

				return m, m.personnelView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.svc.Importer)

				return m, m.importView.Init()
			case "4":
				m.currentView = ViewReset
				m.resetView = view.NewResetModel(m.svc.Reports, m.svc.Archives, m.svc.Export, m.workbookDir, m.auth)

				return m, m.resetView.Init()
			case "5":
				m.currentView = ViewArchives
				m.archivesView = view.NewArchivesModel(m.svc.Archives)

				return m, m.archivesView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.svc.Export)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg, view.UnlockedMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLock:
		var newModel tea.Model
		newModel, cmd = m.lockView.Update(msg)
		m.lockView = newModel.(view.LockModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewPersonnel:
		var newModel tea.Model
		newModel, cmd = m.personnelView.Update(msg)
		m.personnelView = newModel.(view.PersonnelModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewReset:
		var newModel tea.Model
		newModel, cmd = m.resetView.Update(msg)
		m.resetView = newModel.(view.ResetModel)
	case ViewArchives:
		var newModel tea.Model
		newModel, cmd = m.archivesView.Update(msg)
		m.archivesView = newModel.(view.ArchivesModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLock:
		return m.lockView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Bistro\n\n" +
				"1. Dashboard\n" +
				"2. Personnel\n" +
				"3. Import Spreadsheet\n" +
				"4. Monthly Reset\n" +
				"5. Archives\n" +
				"6. Export Workbook\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewPersonnel:
		return m.personnelView.View()
	case ViewImport:
		return m.importView.View()
	case ViewReset:
		return m.resetView.View()
	case ViewArchives:
		return m.archivesView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

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

	p := tea.NewProgram(initialModel(svc, authenticator, cfg.Export.Dir))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

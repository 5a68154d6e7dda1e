package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/service"
	"github.com/udash/udash/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// Run drives the whole client UI: the authentication flow followed by the
// dashboard, repeated after every logout until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	var notice *LoggedOutNotice
	for {
		profile, err := t.AuthFlow(ctx, notice)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := t.Dashboard(ctx, profile)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		notice = &LoggedOutNotice{Username: profile.Username}
	}
}

// AuthFlow runs the menu, login, and register pages until the user
// authenticates or quits. On success it returns the authenticated profile.
// A non-nil notice is shown on the menu's status line.
func (t *TUI) AuthFlow(ctx context.Context, notice *LoggedOutNotice) (models.Profile, error) {
	menu := NewMenuModel()
	if notice != nil {
		menu.Update(*notice)
	}

	pages := map[string]tea.Model{
		"menu":     menu,
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Profile{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Profile{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return models.Profile{}, ErrUserQuit
	}

	return result.resultProfile, nil
}

// Dashboard shows the dashboard screen until the user logs out or quits.
// It reports whether the exit was a logout.
func (t *TUI) Dashboard(ctx context.Context, profile models.Profile) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, profile)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

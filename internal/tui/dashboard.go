package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/udash/udash/internal/service"
	"github.com/udash/udash/models"
)

// dashboardModel is the Bubble Tea model for the post-login dashboard. It loads
// the profile, the account counters, and the server version in one async command
// and renders them as two tables. The logout hotkey closes the session and ends
// the program so the caller can restart the authentication flow.
type dashboardModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	dash service.ClientDashboardService

	profile models.Profile
	stats   models.UserStats
	version string

	loading bool
	errMsg  string
	status  string
	logout  bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, profile models.Profile) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		auth:    services.AuthService,
		dash:    services.DashboardService,
		profile: profile,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.profile = msg.profile
		m.stats = msg.stats
		m.version = msg.version
		return m, nil
	case copiedMsg:
		m.status = "Copied"
		return m, clearStatusCmd()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.auth.Session().Expired() {
		m.auth.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	}

	switch {
	case keyMsg.String() == "ctrl+c" || keyMsg.String() == "q":
		return m, tea.Quit
	case key.Matches(keyMsg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.copy):
		text := m.profile.Email
		if strings.TrimSpace(text) == "" {
			text = m.profile.Username
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	case key.Matches(keyMsg, keys.logout):
		m.auth.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n\n")
	}

	b.WriteString("Profile\n")
	b.WriteString(fmt.Sprintf("  Username      │ %s\n", valueOrDash(m.profile.Username)))
	b.WriteString(fmt.Sprintf("  Name          │ %s\n", valueOrDash(m.profile.Name)))
	b.WriteString(fmt.Sprintf("  Email         │ %s\n", valueOrDash(fitText(m.profile.Email, 40))))
	b.WriteString(fmt.Sprintf("  Member since  │ %s\n", memberSince(m.profile.CreatedAt)))
	b.WriteString(fmt.Sprintf("  Session       │ %s\n", m.auth.Session().Duration().Round(time.Second)))

	b.WriteString("\nAccounts\n")
	b.WriteString(fmt.Sprintf("  Total          │ %d\n", m.stats.TotalUsers))
	b.WriteString(fmt.Sprintf("  Active         │ %d\n", m.stats.ActiveUsers))
	b.WriteString(fmt.Sprintf("  Recent signups │ %d\n", m.stats.RecentSignups))

	b.WriteString("\nServer version: ")
	b.WriteString(valueOrDash(m.version))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	page := renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "r: refresh │ c: copy email │ l: log out │ q: quit")
	return appStyle.Render(page)
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dash := m.dash

	return func() tea.Msg {
		profile, err := dash.Profile(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		stats, err := dash.UserStats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		version, err := dash.ServerVersion(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			profile: profile,
			stats:   stats,
			version: version,
		}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func memberSince(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

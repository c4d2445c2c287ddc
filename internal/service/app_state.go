package service

import (
	"sync"

	apperrors "github.com/l27labs/dca-engine/internal/errors"
)

// Screens navigable from the shell.
const (
	ScreenDashboard = "dashboard"
	ScreenContent   = "content"
	ScreenRapid     = "rapid"
	ScreenStrategy  = "strategy"
	ScreenCalendar  = "calendar"
)

var screenTitles = map[string]string{
	ScreenDashboard: "Campaign Dashboard",
	ScreenContent:   "Content Studio",
	ScreenRapid:     "Rapid Response",
	ScreenStrategy:  "Strategy & Analytics",
	ScreenCalendar:  "Campaign Calendar",
}

// AppStateView is the shell's renderable state.
type AppStateView struct {
	Screen           string `json:"screen"`
	Title            string `json:"title"`
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
	SampleData       bool   `json:"sample_data"`
	ActiveAgentID    string `json:"active_agent_id,omitempty"`
}

// AppState is the shell-owned application state: active screen, sidebar
// collapse, the sample-data toggle, and the active-agent indicator. One
// instance, passed to whoever needs it, never a package global.
type AppState struct {
	mu               sync.Mutex
	screen           string
	sidebarCollapsed bool
	sampleData       bool
	activeAgentID    string
}

func NewAppState() *AppState {
	return &AppState{screen: ScreenDashboard}
}

// Navigate switches the active screen.
func (a *AppState) Navigate(screen string) error {
	if _, ok := screenTitles[screen]; !ok {
		return apperrors.NewValidation("unknown screen: " + screen)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen = screen
	return nil
}

// ToggleSidebar flips the collapse flag and returns the new value.
func (a *AppState) ToggleSidebar() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sidebarCollapsed = !a.sidebarCollapsed
	return a.sidebarCollapsed
}

// SetSampleData sets the display-only sample toggle. It never touches the
// persisted collections.
func (a *AppState) SetSampleData(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sampleData = enabled
}

func (a *AppState) SampleData() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sampleData
}

// SetAgentActivity drives the active-agent indicator around an invocation.
func (a *AppState) SetAgentActivity(agentID string, active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if active {
		a.activeAgentID = agentID
	} else if a.activeAgentID == agentID {
		a.activeAgentID = ""
	}
}

func (a *AppState) View() AppStateView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AppStateView{
		Screen:           a.screen,
		Title:            screenTitles[a.screen],
		SidebarCollapsed: a.sidebarCollapsed,
		SampleData:       a.sampleData,
		ActiveAgentID:    a.activeAgentID,
	}
}

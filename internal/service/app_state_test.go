package service

import (
	"errors"
	"testing"

	apperrors "github.com/l27labs/dca-engine/internal/errors"
)

func TestAppStateNavigate(t *testing.T) {
	app := NewAppState()

	view := app.View()
	if view.Screen != ScreenDashboard || view.Title != "Campaign Dashboard" {
		t.Errorf("unexpected initial view: %+v", view)
	}

	if err := app.Navigate(ScreenRapid); err != nil {
		t.Fatal(err)
	}
	view = app.View()
	if view.Screen != ScreenRapid || view.Title != "Rapid Response" {
		t.Errorf("unexpected view after navigate: %+v", view)
	}

	var verr *apperrors.ValidationError
	if err := app.Navigate("settings"); !errors.As(err, &verr) {
		t.Errorf("unknown screen must be a validation error, got %v", err)
	}
	if app.View().Screen != ScreenRapid {
		t.Error("failed navigation must not change the screen")
	}
}

func TestAppStateToggles(t *testing.T) {
	app := NewAppState()

	if !app.ToggleSidebar() {
		t.Error("first toggle must collapse")
	}
	if app.ToggleSidebar() {
		t.Error("second toggle must expand")
	}

	app.SetSampleData(true)
	if !app.SampleData() {
		t.Error("sample toggle not set")
	}
}

func TestAppStateAgentActivity(t *testing.T) {
	app := NewAppState()

	app.SetAgentActivity("agent-1", true)
	if got := app.View().ActiveAgentID; got != "agent-1" {
		t.Errorf("expected agent-1 active, got %q", got)
	}

	// A stale clear from another agent does not stomp the indicator.
	app.SetAgentActivity("agent-2", false)
	if got := app.View().ActiveAgentID; got != "agent-1" {
		t.Errorf("stale clear must be ignored, got %q", got)
	}

	app.SetAgentActivity("agent-1", false)
	if got := app.View().ActiveAgentID; got != "" {
		t.Errorf("expected indicator cleared, got %q", got)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/l27labs/dca-engine/internal/agent"
	apperrors "github.com/l27labs/dca-engine/internal/errors"
	"github.com/l27labs/dca-engine/internal/model"
)

func newStrategyService(inv agent.Invoker) *StrategyService {
	return NewStrategyService(inv, agent.DefaultStrategyAgentID, nil, nil)
}

func TestStrategyAnalyzeRequiresInput(t *testing.T) {
	svc := newStrategyService(&fakeInvoker{})

	_, err := svc.Analyze(context.Background(), "")
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Error() != "Please provide engagement data or trends to analyze." {
		t.Errorf("unexpected message: %q", verr.Error())
	}
}

func TestStrategyAnalyzeBuildsBriefingAndActions(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"pillar_performance": "Pillar A leads engagement.",
		"weekly_priorities":  "- Post daily on WhatsApp\n* Schedule town hall recap\n1. Counter opponent claims",
	})}
	svc := newStrategyService(inv)

	briefing, err := svc.Analyze(context.Background(), "Reach up 40% week over week")
	if err != nil {
		t.Fatal(err)
	}

	want := "Analyze campaign performance: Reach up 40% week over week"
	if inv.prompts[0] != want {
		t.Errorf("prompt mismatch:\n got %q\nwant %q", inv.prompts[0], want)
	}
	if briefing.PillarPerformance != "Pillar A leads engagement." {
		t.Errorf("unexpected briefing field: %q", briefing.PillarPerformance)
	}

	panel := svc.Panel()
	if panel.State != StateReady {
		t.Fatalf("expected ready state, got %q", panel.State)
	}
	if len(panel.ActionItems) != 3 {
		t.Fatalf("expected 3 action items, got %d", len(panel.ActionItems))
	}
	if panel.ActionItems[2].Text != "Counter opponent claims" {
		t.Errorf("numbered marker not stripped: %q", panel.ActionItems[2].Text)
	}
	if panel.AppliedCount != 0 {
		t.Errorf("fresh items must start unapplied, count %d", panel.AppliedCount)
	}
}

func TestToggleActionCountsApplied(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"weekly_priorities": "- First\n- Second",
	})}
	svc := newStrategyService(inv)

	if _, err := svc.Analyze(context.Background(), "data"); err != nil {
		t.Fatal(err)
	}
	if err := svc.ToggleAction("action-1"); err != nil {
		t.Fatal(err)
	}

	panel := svc.Panel()
	if panel.AppliedCount != 1 {
		t.Errorf("expected 1 applied, got %d", panel.AppliedCount)
	}
	if !panel.ActionItems[1].Applied || panel.ActionItems[0].Applied {
		t.Errorf("wrong item toggled: %+v", panel.ActionItems)
	}

	// Toggling back clears the flag.
	if err := svc.ToggleAction("action-1"); err != nil {
		t.Fatal(err)
	}
	if got := svc.Panel().AppliedCount; got != 0 {
		t.Errorf("expected 0 applied after untoggle, got %d", got)
	}

	var serr *apperrors.StateError
	if err := svc.ToggleAction("action-99"); !errors.As(err, &serr) {
		t.Errorf("unknown item must be a state error, got %v", err)
	}
}

func TestToggleSectionValidatesKey(t *testing.T) {
	svc := newStrategyService(&fakeInvoker{})

	if err := svc.ToggleSection("content_gaps"); err != nil {
		t.Fatal(err)
	}
	if svc.Panel().OpenSections["content_gaps"] {
		t.Error("content_gaps defaults open, toggle should close it")
	}

	var verr *apperrors.ValidationError
	if err := svc.ToggleSection("nonexistent"); !errors.As(err, &verr) {
		t.Errorf("unknown section must be a validation error, got %v", err)
	}
}

func TestReanalysisResetsSectionsAndActions(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"weekly_priorities": "- Only item",
	})}
	svc := newStrategyService(inv)

	if _, err := svc.Analyze(context.Background(), "data"); err != nil {
		t.Fatal(err)
	}
	if err := svc.ToggleSection("pillar_performance"); err != nil {
		t.Fatal(err)
	}
	if err := svc.ToggleSection("messaging_pivots"); err != nil {
		t.Fatal(err)
	}
	if err := svc.ToggleAction("action-0"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Analyze(context.Background(), "fresh data"); err != nil {
		t.Fatal(err)
	}

	panel := svc.Panel()
	for key, def := range model.SectionDefaults {
		if panel.OpenSections[key] != def {
			t.Errorf("section %s not reset: got %v, want %v", key, panel.OpenSections[key], def)
		}
	}
	if panel.AppliedCount != 0 {
		t.Errorf("applied flags must reset on re-analysis, count %d", panel.AppliedCount)
	}
}

func TestStrategyGatewayFailure(t *testing.T) {
	inv := &fakeInvoker{result: &agent.Result{Success: false, Error: "agent unavailable"}}
	svc := newStrategyService(inv)

	_, err := svc.Analyze(context.Background(), "data")
	var gerr *apperrors.GatewayError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if gerr.Error() != "agent unavailable" {
		t.Errorf("gateway error must pass through verbatim, got %q", gerr.Error())
	}
}

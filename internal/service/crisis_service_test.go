package service

import (
	"context"
	"errors"
	"testing"

	"github.com/l27labs/dca-engine/internal/agent"
	apperrors "github.com/l27labs/dca-engine/internal/errors"
)

func newCrisisService(inv agent.Invoker) *CrisisService {
	return NewCrisisService(inv, agent.DefaultCrisisAgentID, nil, nil)
}

func TestAnalyzeRequiresAttackText(t *testing.T) {
	svc := newCrisisService(&fakeInvoker{})

	_, err := svc.Analyze(context.Background(), "   ")
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Error() != "Please paste the criticism or attack text to analyze." {
		t.Errorf("unexpected message: %q", verr.Error())
	}
}

func TestAnalyzePromptAndBundle(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"classification":       "Misinformation",
		"threat_level":         "High",
		"recommended_strategy": "Rapid factual rebuttal",
		"draft_response":       "The record shows otherwise.",
	})}
	svc := newCrisisService(inv)

	resp, err := svc.Analyze(context.Background(), "They claim the road project is fake.")
	if err != nil {
		t.Fatal(err)
	}

	want := "Analyze this criticism/attack: They claim the road project is fake."
	if inv.prompts[0] != want {
		t.Errorf("prompt mismatch:\n got %q\nwant %q", inv.prompts[0], want)
	}
	if resp.Classification != "Misinformation" {
		t.Errorf("unexpected classification: %q", resp.Classification)
	}

	panel := svc.Panel()
	if panel.State != StateReady {
		t.Errorf("expected ready state, got %q", panel.State)
	}
	if panel.EditableResponse != "The record shows otherwise." {
		t.Errorf("buffer not seeded from draft response: %q", panel.EditableResponse)
	}
	if panel.SilenceRecommended {
		t.Error("silence must not be recommended here")
	}
	if panel.ThreatSeverity != "high" {
		t.Errorf("expected high severity, got %q", panel.ThreatSeverity)
	}
}

func TestSilenceGateBlocksApprove(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"recommended_strategy": "Strategic SILENCE is the best course",
		"draft_response":       "No comment.",
	})}
	svc := newCrisisService(inv)

	if _, err := svc.Analyze(context.Background(), "attack"); err != nil {
		t.Fatal(err)
	}
	if !svc.Panel().SilenceRecommended {
		t.Fatal("mixed-case silence must be detected")
	}

	err := svc.ApproveResponse()
	var serr *apperrors.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected state error, got %v", err)
	}

	if err := svc.AdoptSilence(); err != nil {
		t.Fatal(err)
	}
	panel := svc.Panel()
	if !panel.Approved {
		t.Error("adopting silence must approve the analysis")
	}
	if panel.EditableResponse != "" {
		t.Errorf("adopting silence must clear the buffer, got %q", panel.EditableResponse)
	}
}

func TestApprovalIsTerminal(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"recommended_strategy": "Engage directly",
		"draft_response":       "We welcome scrutiny.",
	})}
	svc := newCrisisService(inv)

	if _, err := svc.Analyze(context.Background(), "attack"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetResponse("We welcome scrutiny, always."); err != nil {
		t.Fatal(err)
	}
	if err := svc.ApproveResponse(); err != nil {
		t.Fatal(err)
	}

	for name, op := range map[string]func() error{
		"approve": svc.ApproveResponse,
		"silence": svc.AdoptSilence,
		"reset":   svc.ResetEdit,
		"edit":    func() error { return svc.SetResponse("more edits") },
	} {
		var serr *apperrors.StateError
		if err := op(); !errors.As(err, &serr) {
			t.Errorf("%s after approval: expected state error, got %v", name, err)
		}
	}

	// A fresh analysis starts over.
	if _, err := svc.Analyze(context.Background(), "new attack"); err != nil {
		t.Fatal(err)
	}
	if svc.Panel().Approved {
		t.Error("re-analysis must reset the approved flag")
	}
}

func TestResetEditRestoresDraft(t *testing.T) {
	inv := &fakeInvoker{result: successResult(map[string]interface{}{
		"draft_response": "Original response.",
	})}
	svc := newCrisisService(inv)

	if _, err := svc.Analyze(context.Background(), "attack"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetResponse("Heavily edited."); err != nil {
		t.Fatal(err)
	}
	if err := svc.ResetEdit(); err != nil {
		t.Fatal(err)
	}
	if got := svc.Panel().EditableResponse; got != "Original response." {
		t.Errorf("reset must restore the draft, got %q", got)
	}
}

func TestAnalyzeGatewayFailure(t *testing.T) {
	inv := &fakeInvoker{result: &agent.Result{Success: false}}
	svc := newCrisisService(inv)

	_, err := svc.Analyze(context.Background(), "attack")
	var gerr *apperrors.GatewayError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if gerr.Error() != "Failed to analyze. Please try again." {
		t.Errorf("empty gateway error must fall back to the default message, got %q", gerr.Error())
	}
	if svc.Panel().State != StateFailed {
		t.Error("expected failed state")
	}
}

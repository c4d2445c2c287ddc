package service

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/l27labs/dca-engine/internal/agent"
	apperrors "github.com/l27labs/dca-engine/internal/errors"
	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/monitoring"
)

const (
	msgInputDataRequired = "Please provide engagement data or trends to analyze."
	msgNoBriefingReady   = "no briefing is ready"
	msgUnknownSection    = "unknown briefing section"
	msgUnknownAction     = "unknown action item"
	strategyAnalysisOp   = "strategy analysis"
)

// StrategyPanel is the strategy screen's renderable state.
type StrategyPanel struct {
	State        State                   `json:"state"`
	Error        string                  `json:"error,omitempty"`
	Briefing     *model.StrategyBriefing `json:"briefing,omitempty"`
	ActionItems  []model.ActionItem      `json:"action_items"`
	OpenSections map[string]bool         `json:"open_sections"`
	AppliedCount int                     `json:"applied_count"`
}

// StrategyService analyzes performance data into an eight-field briefing,
// derives a checklist from the weekly priorities, and tracks the per-section
// open flags. All of it is ephemeral.
type StrategyService struct {
	Agent   agent.Invoker
	AgentID string
	Metrics *monitoring.Metrics
	Log     *logrus.Logger

	Activity func(agentID string, active bool)

	mu       sync.Mutex
	state    State
	briefing *model.StrategyBriefing
	actions  []model.ActionItem
	sections map[string]bool
	lastErr  string
}

func NewStrategyService(inv agent.Invoker, agentID string, metrics *monitoring.Metrics, log *logrus.Logger) *StrategyService {
	return &StrategyService{
		Agent:    inv,
		AgentID:  agentID,
		Metrics:  metrics,
		Log:      log,
		state:    StateIdle,
		sections: model.DefaultOpenSections(),
	}
}

// Analyze invokes the strategy agent and populates the briefing, the derived
// action items, and the section flags reset to their defaults.
func (s *StrategyService) Analyze(ctx context.Context, inputData string) (*model.StrategyBriefing, error) {
	if strings.TrimSpace(inputData) == "" {
		return nil, apperrors.NewValidation(msgInputDataRequired)
	}

	s.mu.Lock()
	if s.state == StateAnalyzing {
		s.mu.Unlock()
		return nil, apperrors.NewBusy(strategyAnalysisOp)
	}
	s.state = StateAnalyzing
	s.briefing = nil
	s.actions = nil
	s.lastErr = ""
	s.mu.Unlock()

	if s.Activity != nil {
		s.Activity(s.AgentID, true)
		defer s.Activity(s.AgentID, false)
	}

	res, err := s.Agent.Invoke(ctx, "Analyze campaign performance: "+inputData, s.AgentID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.lastErr = msgUnexpectedError
		s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeError)
		if s.Log != nil {
			s.Log.WithError(err).Error("strategy analysis request failed")
		}
		return nil, apperrors.NewGateway(msgUnexpectedError)
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = msgAnalyzeFailed
		}
		s.state = StateFailed
		s.lastErr = msg
		s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeFailure)
		return nil, apperrors.NewGateway(msg)
	}

	briefing := model.StrategyBriefing{
		PillarPerformance:     res.Field("pillar_performance"),
		TopPerformingContent:  res.Field("top_performing_content"),
		ContentGaps:           res.Field("content_gaps"),
		TimingRecommendations: res.Field("timing_recommendations"),
		MessagingPivots:       res.Field("messaging_pivots"),
		CompetitorInsights:    res.Field("competitor_insights"),
		WeeklyPriorities:      res.Field("weekly_priorities"),
		RiskAlerts:            res.Field("risk_alerts"),
	}

	s.state = StateReady
	s.briefing = &briefing
	s.actions = model.ExtractActionItems(briefing.WeeklyPriorities)
	s.sections = model.DefaultOpenSections()
	s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeSuccess)

	out := briefing
	return &out, nil
}

// ToggleSection flips one section's open flag.
func (s *StrategyService) ToggleSection(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := model.SectionDefaults[key]; !known {
		return apperrors.NewValidation(msgUnknownSection)
	}
	s.sections[key] = !s.sections[key]
	return nil
}

// ToggleAction flips one action item's applied flag.
func (s *StrategyService) ToggleAction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return apperrors.NewState(msgNoBriefingReady)
	}
	for i := range s.actions {
		if s.actions[i].ID == id {
			s.actions[i].Applied = !s.actions[i].Applied
			return nil
		}
	}
	return apperrors.NewState(msgUnknownAction)
}

// Panel returns the current renderable state.
func (s *StrategyService) Panel() StrategyPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	panel := StrategyPanel{
		State:        s.state,
		Error:        s.lastErr,
		ActionItems:  make([]model.ActionItem, len(s.actions)),
		OpenSections: make(map[string]bool, len(s.sections)),
	}
	copy(panel.ActionItems, s.actions)
	for k, v := range s.sections {
		panel.OpenSections[k] = v
	}
	for _, a := range s.actions {
		if a.Applied {
			panel.AppliedCount++
		}
	}
	if s.briefing != nil {
		b := *s.briefing
		panel.Briefing = &b
	}
	return panel
}

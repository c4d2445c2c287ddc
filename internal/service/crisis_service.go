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
	msgAttackTextRequired = "Please paste the criticism or attack text to analyze."
	msgAnalyzeFailed      = "Failed to analyze. Please try again."
	msgNoAnalysisReady    = "no analysis is ready"
	msgAnalysisApproved   = "analysis already approved"
	msgSilenceGate        = "silence strategy recommended; adopt silence instead"
	crisisAnalysisOp      = "crisis analysis"
)

// CrisisPanel is the rapid-response screen's renderable state.
type CrisisPanel struct {
	State              State                 `json:"state"`
	Error              string                `json:"error,omitempty"`
	Response           *model.CrisisResponse `json:"response,omitempty"`
	EditableResponse   string                `json:"editable_response"`
	Approved           bool                  `json:"approved"`
	SilenceRecommended bool                  `json:"silence_recommended"`
	ThreatSeverity     string                `json:"threat_severity,omitempty"`
}

// CrisisService analyzes adversarial text into a response bundle. Nothing is
// persisted; each analysis replaces the previous one. Approval is terminal
// for an analysis.
type CrisisService struct {
	Agent   agent.Invoker
	AgentID string
	Metrics *monitoring.Metrics
	Log     *logrus.Logger

	Activity func(agentID string, active bool)

	mu       sync.Mutex
	state    State
	current  *model.CrisisResponse
	buffer   string
	approved bool
	lastErr  string
}

func NewCrisisService(inv agent.Invoker, agentID string, metrics *monitoring.Metrics, log *logrus.Logger) *CrisisService {
	return &CrisisService{
		Agent:   inv,
		AgentID: agentID,
		Metrics: metrics,
		Log:     log,
		state:   StateIdle,
	}
}

// Analyze invokes the crisis agent on the attack text and normalizes the
// result bundle. The draft response is copied into an editable buffer.
func (s *CrisisService) Analyze(ctx context.Context, attackText string) (*model.CrisisResponse, error) {
	if strings.TrimSpace(attackText) == "" {
		return nil, apperrors.NewValidation(msgAttackTextRequired)
	}

	s.mu.Lock()
	if s.state == StateAnalyzing {
		s.mu.Unlock()
		return nil, apperrors.NewBusy(crisisAnalysisOp)
	}
	s.state = StateAnalyzing
	s.current = nil
	s.buffer = ""
	s.approved = false
	s.lastErr = ""
	s.mu.Unlock()

	if s.Activity != nil {
		s.Activity(s.AgentID, true)
		defer s.Activity(s.AgentID, false)
	}

	res, err := s.Agent.Invoke(ctx, "Analyze this criticism/attack: "+attackText, s.AgentID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.lastErr = msgUnexpectedError
		s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeError)
		if s.Log != nil {
			s.Log.WithError(err).Error("crisis analysis request failed")
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

	response := model.CrisisResponse{
		Classification:      res.Field("classification"),
		ThreatLevel:         res.Field("threat_level"),
		SourceAnalysis:      res.Field("source_analysis"),
		RecommendedStrategy: res.Field("recommended_strategy"),
		DraftResponse:       res.Field("draft_response"),
		TalkingPoints:       res.Field("talking_points"),
		DoNotSay:            res.Field("do_not_say"),
		EscalationNotes:     res.Field("escalation_notes"),
	}

	s.state = StateReady
	s.current = &response
	s.buffer = response.DraftResponse
	s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeSuccess)

	out := response
	return &out, nil
}

// SetResponse updates the editable response buffer.
func (s *CrisisService) SetResponse(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.buffer = text
	return nil
}

// ResetEdit restores the buffer from the original draft response.
func (s *CrisisService) ResetEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.buffer = s.current.DraftResponse
	return nil
}

// ApproveResponse marks the edited response approved. Refused when the
// recommended strategy is silence; Adopt Silence is the only approval then.
func (s *CrisisService) ApproveResponse() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	if s.current.SilenceRecommended() {
		return apperrors.NewState(msgSilenceGate)
	}
	s.approved = true
	return nil
}

// AdoptSilence clears the response buffer and marks the analysis approved.
func (s *CrisisService) AdoptSilence() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.buffer = ""
	s.approved = true
	return nil
}

func (s *CrisisService) editableLocked() error {
	if s.state != StateReady || s.current == nil {
		return apperrors.NewState(msgNoAnalysisReady)
	}
	if s.approved {
		return apperrors.NewState(msgAnalysisApproved)
	}
	return nil
}

// Panel returns the current renderable state.
func (s *CrisisService) Panel() CrisisPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	panel := CrisisPanel{
		State:            s.state,
		Error:            s.lastErr,
		EditableResponse: s.buffer,
		Approved:         s.approved,
	}
	if s.current != nil {
		r := *s.current
		panel.Response = &r
		panel.SilenceRecommended = r.SilenceRecommended()
		panel.ThreatSeverity = model.ThreatSeverity(r.ThreatLevel)
	}
	return panel
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/l27labs/dca-engine/internal/agent"
	apperrors "github.com/l27labs/dca-engine/internal/errors"
	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/monitoring"
	"github.com/l27labs/dca-engine/internal/repository"
)

const (
	msgSelectPillar     = "Please select a strategic pillar."
	msgGenerateFailed   = "Failed to generate content. Please try again."
	msgNoDraftReady     = "no draft is ready"
	contentGenerationOp = "content generation"
)

// GenerateParams are the user-selected generation inputs. Pillar is the bare
// letter as selected; platform and objective fall back to their presets.
type GenerateParams struct {
	Platform  string `json:"platform"`
	Pillar    string `json:"pillar"`
	Objective string `json:"objective"`
	Context   string `json:"context"`
}

// ContentPanel is the content studio's renderable state.
type ContentPanel struct {
	State    State        `json:"state"`
	Error    string       `json:"error,omitempty"`
	Draft    *model.Draft `json:"draft,omitempty"`
	PostText string       `json:"post_text"`
}

// ContentService runs the draft workflow: generate a draft from the agent,
// hold it with an editable post-text buffer, then approve it onto the
// calendar or discard it. One invocation in flight at a time.
type ContentService struct {
	Agent     agent.Invoker
	AgentID   string
	DraftRepo repository.DraftRepositoryInterface
	EventRepo repository.EventRepositoryInterface
	Metrics   *monitoring.Metrics
	Log       *logrus.Logger

	// Activity reports the in-flight agent to the shell indicator.
	Activity func(agentID string, active bool)

	mu         sync.Mutex
	state      State
	current    *model.Draft
	postText   string
	lastParams GenerateParams
	lastErr    string
}

func NewContentService(inv agent.Invoker, agentID string, drafts repository.DraftRepositoryInterface, events repository.EventRepositoryInterface, metrics *monitoring.Metrics, log *logrus.Logger) *ContentService {
	return &ContentService{
		Agent:     inv,
		AgentID:   agentID,
		DraftRepo: drafts,
		EventRepo: events,
		Metrics:   metrics,
		Log:       log,
		state:     StateIdle,
	}
}

// Generate validates the parameters, invokes the content agent, and
// normalizes the result into a new draft. Missing result fields fall back to
// the corresponding input parameter or "", so the panel never sees an
// undefined field.
func (s *ContentService) Generate(ctx context.Context, params GenerateParams) (*model.Draft, error) {
	if params.Platform == "" {
		params.Platform = model.PlatformWhatsApp
	}
	if params.Objective == "" {
		params.Objective = model.ObjectiveEngagement
	}
	if strings.TrimSpace(params.Pillar) == "" {
		return nil, apperrors.NewValidation(msgSelectPillar)
	}

	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return nil, apperrors.NewBusy(contentGenerationOp)
	}
	s.state = StateGenerating
	s.current = nil
	s.postText = ""
	s.lastErr = ""
	s.mu.Unlock()

	if s.Activity != nil {
		s.Activity(s.AgentID, true)
		defer s.Activity(s.AgentID, false)
	}

	pillarLabel := model.PillarDisplay(params.Pillar)
	prompt := fmt.Sprintf("Generate campaign content for: Platform: %s, Pillar: %s, Objective: %s",
		params.Platform, pillarLabel, params.Objective)
	if params.Context != "" {
		prompt += ", Context: " + params.Context
	}

	res, err := s.Agent.Invoke(ctx, prompt, s.AgentID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.lastErr = msgUnexpectedError
		s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeError)
		if s.Log != nil {
			s.Log.WithError(err).Error("content generation request failed")
		}
		return nil, apperrors.NewGateway(msgUnexpectedError)
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = msgGenerateFailed
		}
		s.state = StateFailed
		s.lastErr = msg
		s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeFailure)
		return nil, apperrors.NewGateway(msg)
	}

	draft := model.Draft{
		ID:                 "draft-" + uuid.NewString(),
		Platform:           fallback(res.Field("platform"), params.Platform),
		Pillar:             fallback(res.Field("pillar"), pillarLabel),
		ToneLevel:          res.Field("tone_level"),
		Objective:          fallback(res.Field("objective"), params.Objective),
		PostText:           res.Field("post_text"),
		RecommendedTime:    res.Field("recommended_time"),
		StrategicReasoning: res.Field("strategic_reasoning"),
		Hashtags:           res.Field("hashtags"),
		CallToAction:       res.Field("call_to_action"),
		Status:             model.StatusDraft,
		CreatedAt:          time.Now(),
	}

	s.state = StateReady
	s.current = &draft
	s.postText = draft.PostText
	s.lastParams = params
	s.Metrics.RecordInvocation(s.AgentID, monitoring.OutcomeSuccess)

	out := draft
	return &out, nil
}

// SetPostText updates the editable buffer seeded from the current draft.
func (s *ContentService) SetPostText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.current == nil {
		return apperrors.NewState(msgNoDraftReady)
	}
	s.postText = text
	return nil
}

// Approve commits the edited buffer into the draft, appends it to the drafts
// collection, and emits exactly one calendar event scheduled for tomorrow at
// 09:00 local time. The panel returns to idle with the context cleared.
func (s *ContentService) Approve() (*model.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.current == nil {
		return nil, apperrors.NewState(msgNoDraftReady)
	}

	approved := *s.current
	approved.PostText = s.postText
	approved.Status = model.StatusApproved
	s.DraftRepo.Append(approved)

	now := time.Now()
	event := model.CalendarEvent{
		ID:            "evt-" + uuid.NewString(),
		Draft:         approved,
		ScheduledDate: nextSlot(now),
		ApprovedAt:    now,
	}
	s.EventRepo.Append(event)
	s.Metrics.RecordApproval()

	s.state = StateIdle
	s.current = nil
	s.postText = ""
	s.lastParams = GenerateParams{}
	s.lastErr = ""

	if s.Log != nil {
		s.Log.WithFields(logrus.Fields{
			"draft":     approved.ID,
			"event":     event.ID,
			"scheduled": event.ScheduledDate,
		}).Info("draft approved and scheduled")
	}
	return &event, nil
}

// Discard drops the current draft and returns the parameters it was
// generated with, so the caller can compose reject-and-regenerate as two
// explicit transitions.
func (s *ContentService) Discard() (GenerateParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.current == nil {
		return GenerateParams{}, apperrors.NewState(msgNoDraftReady)
	}
	params := s.lastParams
	s.state = StateIdle
	s.current = nil
	s.postText = ""
	return params, nil
}

// Panel returns the current renderable state.
func (s *ContentService) Panel() ContentPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	panel := ContentPanel{
		State:    s.state,
		Error:    s.lastErr,
		PostText: s.postText,
	}
	if s.current != nil {
		d := *s.current
		panel.Draft = &d
	}
	return panel
}

// nextSlot is the fixed schedule slot for an approval: the next day at 09:00
// in the approval's location.
func nextSlot(approvedAt time.Time) time.Time {
	return time.Date(approvedAt.Year(), approvedAt.Month(), approvedAt.Day()+1, 9, 0, 0, 0, approvedAt.Location())
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

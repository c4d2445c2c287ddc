package service

import (
	"time"

	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/repository"
)

const recentDraftLimit = 5

// DashboardStats are the four stat cards.
type DashboardStats struct {
	DraftsPending int `json:"drafts_pending"`
	Approved      int `json:"approved"`
	ActivePillars int `json:"active_pillars"`
	ThreatAlerts  int `json:"threat_alerts"`
}

// Dashboard is the dashboard screen's renderable state.
type Dashboard struct {
	Stats        DashboardStats `json:"stats"`
	RecentDrafts []model.Draft  `json:"recent_drafts"`
	Week         []Day          `json:"week"`
}

// DashboardService derives the overview screen from the two collections.
type DashboardService struct {
	DraftRepo repository.DraftRepositoryInterface
	EventRepo repository.EventRepositoryInterface
}

func NewDashboardService(drafts repository.DraftRepositoryInterface, events repository.EventRepositoryInterface) *DashboardService {
	return &DashboardService{DraftRepo: drafts, EventRepo: events}
}

// Drafts returns the display drafts collection, samples first when enabled.
func (s *DashboardService) Drafts(includeSample bool) []model.Draft {
	persisted := s.DraftRepo.List()
	if !includeSample {
		return persisted
	}
	return append(model.SampleDrafts(), persisted...)
}

// Build assembles the dashboard from the display collections.
func (s *DashboardService) Build(includeSample bool) Dashboard {
	drafts := s.Drafts(includeSample)
	events := s.EventRepo.List()
	if includeSample {
		events = append(model.SampleEvents(), events...)
	}

	stats := DashboardStats{}
	pillars := map[string]bool{}
	for _, d := range drafts {
		switch d.Status {
		case model.StatusDraft:
			stats.DraftsPending++
		case model.StatusApproved:
			stats.Approved++
		}
		if letter := model.PillarLetter(d.Pillar); letter != "" {
			pillars[letter] = true
		}
	}
	stats.ActivePillars = len(pillars)

	recent := drafts
	if len(recent) > recentDraftLimit {
		recent = recent[:recentDraftLimit]
	}

	return Dashboard{
		Stats:        stats,
		RecentDrafts: recent,
		Week:         Bucket(events, time.Now(), WeekDays),
	}
}

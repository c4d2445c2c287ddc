package service

import (
	"strings"
	"time"

	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/repository"
)

// Calendar view sizes: a forward-looking window starting today.
const (
	WeekDays  = 7
	MonthDays = 28
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Day is one calendar cell: a date, its today flag, and the events scheduled
// on that calendar day.
type Day struct {
	Date    time.Time             `json:"date"`
	IsToday bool                  `json:"is_today"`
	Events  []model.CalendarEvent `json:"events"`
}

// CalendarView is the calendar screen's renderable state.
type CalendarView struct {
	View   string                `json:"view"`
	Days   []Day                 `json:"days"`
	Events []model.CalendarEvent `json:"events"`
}

// CalendarService builds the week/month grids from the persisted events,
// optionally with the sample set composed in front.
type CalendarService struct {
	EventRepo repository.EventRepositoryInterface
}

func NewCalendarService(events repository.EventRepositoryInterface) *CalendarService {
	return &CalendarService{EventRepo: events}
}

// Events returns the display collection: sample events ahead of persisted
// ones when the toggle is on. Samples are read-only and never persisted.
func (s *CalendarService) Events(includeSample bool) []model.CalendarEvent {
	persisted := s.EventRepo.List()
	if !includeSample {
		return persisted
	}
	return append(model.SampleEvents(), persisted...)
}

// View filters and buckets events into the requested grid. view is "week" or
// "month"; anything else falls back to week.
func (s *CalendarService) View(view, platform, pillar, status string, includeSample bool) CalendarView {
	days := WeekDays
	if view == "month" {
		days = MonthDays
	} else {
		view = "week"
	}
	filtered := FilterEvents(s.Events(includeSample), platform, pillar, status)
	return CalendarView{
		View:   view,
		Days:   Bucket(filtered, time.Now(), days),
		Events: filtered,
	}
}

// FilterEvents applies the three filter dimensions before bucketing.
// Platform is a case-insensitive substring match, pillar an exact
// first-letter match through the pillar table, status an exact match.
// "all" or "" passes a dimension through.
func FilterEvents(events []model.CalendarEvent, platform, pillar, status string) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0, len(events))
	for _, evt := range events {
		if platform != "" && platform != FilterAll &&
			!strings.Contains(strings.ToLower(evt.Draft.Platform), strings.ToLower(platform)) {
			continue
		}
		if pillar != "" && pillar != FilterAll && model.PillarLetter(evt.Draft.Pillar) != pillar {
			continue
		}
		if status != "" && status != FilterAll && evt.Draft.Status != status {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// Bucket distributes events into day cells by calendar-day equality,
// ignoring time-of-day, over a window of days starting at from.
func Bucket(events []model.CalendarEvent, from time.Time, days int) []Day {
	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		day := Day{
			Date:    date,
			IsToday: sameDay(date, from),
			Events:  []model.CalendarEvent{},
		}
		for _, evt := range events {
			if sameDay(evt.ScheduledDate, date) {
				day.Events = append(day.Events, evt)
			}
		}
		out = append(out, day)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package controller

import (
	"net/http"
	"strconv"

	"github.com/l27labs/dca-engine/internal/service"
)

type CalendarController struct {
	Calendar  *service.CalendarService
	Dashboard *service.DashboardService
	AppState  *service.AppState
}

// sampleFlag resolves the sample-data toggle: the shell state unless the
// query string overrides it.
func (c *CalendarController) sampleFlag(r *http.Request) bool {
	if raw := r.URL.Query().Get("sample"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return c.AppState.SampleData()
}

// GetCalendar serves the filtered, bucketed calendar view.
func (c *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := c.Calendar.View(
		q.Get("view"),
		q.Get("platform"),
		q.Get("pillar"),
		q.Get("status"),
		c.sampleFlag(r),
	)
	respond(w, http.StatusOK, view)
}

// GetDashboard serves the overview screen.
func (c *CalendarController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, c.Dashboard.Build(c.sampleFlag(r)))
}

// ListDrafts serves the full display drafts collection.
func (c *CalendarController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"data": c.Dashboard.Drafts(c.sampleFlag(r)),
	})
}

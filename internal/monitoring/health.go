package monitoring

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus is the payload served on the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	UptimeSec int64  `json:"uptime_seconds"`
}

// HealthChecker reports liveness for this service. There are no external
// backends to probe, so a reachable process is a healthy one.
type HealthChecker struct {
	service string
	version string
	started time.Time
}

func NewHealthChecker(service, version string) *HealthChecker {
	return &HealthChecker{
		service: service,
		version: version,
		started: time.Now(),
	}
}

func (hc *HealthChecker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthStatus{
			Status:    "healthy",
			Service:   hc.service,
			Version:   hc.version,
			UptimeSec: int64(time.Since(hc.started).Seconds()),
		})
	}
}

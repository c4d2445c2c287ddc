package controller

import (
	"encoding/json"
	"net/http"

	"github.com/l27labs/dca-engine/internal/agent"
	"github.com/l27labs/dca-engine/internal/service"
)

type ShellController struct {
	AppState *service.AppState
	Agents   []agent.Info
}

func (c *ShellController) GetState(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"state":  c.AppState.View(),
		"agents": c.Agents,
	})
}

func (c *ShellController) Navigate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Screen string `json:"screen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.AppState.Navigate(body.Screen); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.AppState.View())
}

func (c *ShellController) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	c.AppState.ToggleSidebar()
	respond(w, http.StatusOK, c.AppState.View())
}

// SetSampleData flips display composition only; the persisted collections
// are never touched.
func (c *ShellController) SetSampleData(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	c.AppState.SetSampleData(body.Enabled)
	respond(w, http.StatusOK, c.AppState.View())
}

package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/l27labs/dca-engine/internal/service"
)

type StrategyController struct {
	Service *service.StrategyService
}

func (c *StrategyController) Analyze(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InputData string `json:"input_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if _, err := c.Service.Analyze(r.Context(), body.InputData); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *StrategyController) GetPanel(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *StrategyController) ToggleSection(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ToggleSection(chi.URLParam(r, "key")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *StrategyController) ToggleAction(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ToggleAction(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

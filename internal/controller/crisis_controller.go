package controller

import (
	"encoding/json"
	"net/http"

	"github.com/l27labs/dca-engine/internal/service"
)

type CrisisController struct {
	Service *service.CrisisService
}

func (c *CrisisController) Analyze(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AttackText string `json:"attack_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if _, err := c.Service.Analyze(r.Context(), body.AttackText); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *CrisisController) GetPanel(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *CrisisController) SetResponse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DraftResponse string `json:"draft_response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.Service.SetResponse(body.DraftResponse); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *CrisisController) ResetEdit(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ResetEdit(); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *CrisisController) Approve(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ApproveResponse(); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

func (c *CrisisController) AdoptSilence(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.AdoptSilence(); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

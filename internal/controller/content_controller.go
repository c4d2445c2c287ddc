package controller

import (
	"encoding/json"
	"net/http"

	"github.com/l27labs/dca-engine/internal/service"
)

type ContentController struct {
	Service *service.ContentService
}

// Generate runs one content generation from the posted parameters.
func (c *ContentController) Generate(w http.ResponseWriter, r *http.Request) {
	var body service.GenerateParams
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if _, err := c.Service.Generate(r.Context(), body); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

// GetPanel returns the content studio state.
func (c *ContentController) GetPanel(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, c.Service.Panel())
}

// SetPostText updates the editable post-text buffer.
func (c *ContentController) SetPostText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PostText string `json:"post_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.Service.SetPostText(body.PostText); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

// Approve commits the edited draft and schedules it. An optional post_text
// in the body is applied to the buffer first, so in-flight edits are not
// lost.
func (c *ContentController) Approve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PostText *string `json:"post_text"`
	}
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	if body.PostText != nil {
		if err := c.Service.SetPostText(*body.PostText); err != nil {
			respondError(w, err)
			return
		}
	}

	event, err := c.Service.Approve()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"event": event,
		"panel": c.Service.Panel(),
	})
}

// Reject composes the two transitions the reject button means: discard the
// current draft, then immediately regenerate with the same parameters.
func (c *ContentController) Reject(w http.ResponseWriter, r *http.Request) {
	params, err := c.Service.Discard()
	if err != nil {
		respondError(w, err)
		return
	}
	if _, err := c.Service.Generate(r.Context(), params); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c.Service.Panel())
}

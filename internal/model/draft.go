package model

import "time"

// Draft statuses
const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Platforms
const (
	PlatformWhatsApp = "WhatsApp"
	PlatformFacebook = "Facebook"
	PlatformBoth     = "Both"
)

// Objectives
const (
	ObjectiveEngagement       = "Engagement"
	ObjectiveNarrativeControl = "Narrative Control"
	ObjectiveMobilization     = "Mobilization"
	ObjectiveRebuttal         = "Rebuttal"
)

type Draft struct {
	ID                 string    `json:"id"`
	Platform           string    `json:"platform"`
	Pillar             string    `json:"pillar"`
	ToneLevel          string    `json:"tone_level"`
	Objective          string    `json:"objective"`
	PostText           string    `json:"post_text"`
	RecommendedTime    string    `json:"recommended_time"`
	StrategicReasoning string    `json:"strategic_reasoning"`
	Hashtags           string    `json:"hashtags"`
	CallToAction       string    `json:"call_to_action"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

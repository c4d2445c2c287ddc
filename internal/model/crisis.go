package model

import "strings"

// CrisisResponse is the transient result of one crisis analysis. It is never
// persisted; each analysis replaces the previous one.
type CrisisResponse struct {
	Classification      string `json:"classification"`
	ThreatLevel         string `json:"threat_level"`
	SourceAnalysis      string `json:"source_analysis"`
	RecommendedStrategy string `json:"recommended_strategy"`
	DraftResponse       string `json:"draft_response"`
	TalkingPoints       string `json:"talking_points"`
	DoNotSay            string `json:"do_not_say"`
	EscalationNotes     string `json:"escalation_notes"`
}

// SilenceRecommended reports whether the recommended strategy calls for not
// responding publicly. The gate is a case-insensitive substring match, so
// "Recommend Silence as the best course" trips it.
func (c *CrisisResponse) SilenceRecommended() bool {
	return strings.Contains(strings.ToLower(c.RecommendedStrategy), "silence")
}

// Threat severity bands used for color-coding.
const (
	ThreatCritical = "critical"
	ThreatHigh     = "high"
	ThreatMedium   = "medium"
	ThreatLow      = "low"
	ThreatUnknown  = "unknown"
)

// ThreatSeverity classifies a free-form threat level into a severity band by
// case-insensitive substring, highest band first.
func ThreatSeverity(level string) string {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, ThreatCritical):
		return ThreatCritical
	case strings.Contains(l, ThreatHigh):
		return ThreatHigh
	case strings.Contains(l, ThreatMedium):
		return ThreatMedium
	case strings.Contains(l, ThreatLow):
		return ThreatLow
	default:
		return ThreatUnknown
	}
}

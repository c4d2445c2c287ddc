package model

import (
	"fmt"
	"regexp"
	"strings"
)

// StrategyBriefing is the transient result of one performance analysis.
type StrategyBriefing struct {
	PillarPerformance     string `json:"pillar_performance"`
	TopPerformingContent  string `json:"top_performing_content"`
	ContentGaps           string `json:"content_gaps"`
	TimingRecommendations string `json:"timing_recommendations"`
	MessagingPivots       string `json:"messaging_pivots"`
	CompetitorInsights    string `json:"competitor_insights"`
	WeeklyPriorities      string `json:"weekly_priorities"`
	RiskAlerts            string `json:"risk_alerts"`
}

// ActionItem is one checklist entry derived from the weekly priorities text.
// Toggle-only, never persisted.
type ActionItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Applied bool   `json:"applied"`
}

// Briefing section keys, in display order.
var SectionOrder = []string{
	"pillar_performance",
	"top_performing_content",
	"content_gaps",
	"timing_recommendations",
	"messaging_pivots",
	"competitor_insights",
	"weekly_priorities",
	"risk_alerts",
}

// SectionDefaults holds the fixed open/closed default per section. These are
// per-render flags and reset on every new analysis.
var SectionDefaults = map[string]bool{
	"pillar_performance":     true,
	"top_performing_content": true,
	"content_gaps":           true,
	"timing_recommendations": false,
	"messaging_pivots":       false,
	"competitor_insights":    false,
	"weekly_priorities":      true,
	"risk_alerts":            true,
}

// DefaultOpenSections returns a fresh copy of the section defaults.
func DefaultOpenSections() map[string]bool {
	m := make(map[string]bool, len(SectionDefaults))
	for k, v := range SectionDefaults {
		m[k] = v
	}
	return m
}

var numberedMarker = regexp.MustCompile(`^\d+\.\s*`)

// ExtractActionItems parses weekly-priorities text line by line. Every line
// beginning with "-", "*" or "1."-style numbering becomes one item with the
// marker stripped; everything else is ignored.
func ExtractActionItems(weeklyPriorities string) []ActionItem {
	var items []ActionItem
	for _, line := range strings.Split(weeklyPriorities, "\n") {
		line = strings.TrimSpace(line)
		var text string
		switch {
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "*"):
			text = strings.TrimSpace(line[1:])
		case numberedMarker.MatchString(line):
			text = strings.TrimSpace(numberedMarker.ReplaceAllString(line, ""))
		default:
			continue
		}
		items = append(items, ActionItem{
			ID:   fmt.Sprintf("action-%d", len(items)),
			Text: text,
		})
	}
	return items
}

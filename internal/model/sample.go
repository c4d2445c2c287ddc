package model

import "time"

// SampleDrafts returns the built-in example drafts with timestamps relative
// to now. Shown ahead of the persisted collection when the sample toggle is
// on; never written to the store.
func SampleDrafts() []Draft {
	now := time.Now()
	return []Draft{
		{
			ID:                 "sample-1",
			Platform:           PlatformWhatsApp,
			Pillar:             "A - Economic Development",
			ToneLevel:          "Level 2 - Conversational",
			Objective:          ObjectiveEngagement,
			PostText:           "Our district has seen 3 new industries open this quarter alone. Real progress means real jobs for our families.",
			RecommendedTime:    "Tuesday 9:00 AM - Peak engagement for WhatsApp status updates",
			StrategicReasoning: "Economic messaging resonates strongly with working-age demographics.",
			CallToAction:       "Share this with someone looking for employment opportunities.",
			Status:             StatusDraft,
			CreatedAt:          now.Add(-2 * time.Hour),
		},
		{
			ID:                 "sample-2",
			Platform:           PlatformFacebook,
			Pillar:             "C - Education & Skills",
			ToneLevel:          "Level 3 - Inspirational",
			Objective:          ObjectiveMobilization,
			PostText:           "Scholarships awarded: 150+. Skills programs launched: 12. Youth empowered: countless. Education transforms communities.",
			RecommendedTime:    "Wednesday 7:00 PM - High Facebook engagement window",
			StrategicReasoning: "Education stats create shareable content with visual impact.",
			Hashtags:           "#EducationFirst #SkillsForYouth #CommunityGrowth",
			CallToAction:       "Tag a student who deserves to know about these opportunities.",
			Status:             StatusApproved,
			CreatedAt:          now.Add(-24 * time.Hour),
		},
		{
			ID:                 "sample-3",
			Platform:           PlatformBoth,
			Pillar:             "E - Cultural Heritage & Unity",
			ToneLevel:          "Level 2 - Conversational",
			Objective:          ObjectiveEngagement,
			PostText:           "Our cultural festival brought together 10,000+ people from all backgrounds. Unity is not just a word - it is our strength.",
			RecommendedTime:    "Saturday 10:00 AM - Weekend cultural content performs best",
			StrategicReasoning: "Cultural content drives emotional engagement and sharing.",
			Hashtags:           "#UnityInDiversity #CulturalHeritage",
			CallToAction:       "Share your favorite moment from the festival.",
			Status:             StatusDraft,
			CreatedAt:          now.Add(-5 * time.Hour),
		},
	}
}

// SampleEvents returns the built-in example calendar events, scheduled over
// the next three days.
func SampleEvents() []CalendarEvent {
	now := time.Now()
	drafts := SampleDrafts()
	return []CalendarEvent{
		{
			ID:            "evt-sample-1",
			Draft:         drafts[1],
			ScheduledDate: now.Add(24 * time.Hour),
			ApprovedAt:    now.Add(-12 * time.Hour),
		},
		{
			ID: "evt-sample-2",
			Draft: Draft{
				ID:                 "sample-4",
				Platform:           PlatformFacebook,
				Pillar:             "B - Infrastructure & Connectivity",
				ToneLevel:          "Level 2 - Conversational",
				Objective:          ObjectiveNarrativeControl,
				PostText:           "New road connecting 5 villages completed ahead of schedule. Infrastructure that connects people, not divides them.",
				RecommendedTime:    "Thursday 11:00 AM",
				StrategicReasoning: "Infrastructure achievements counter opposition narratives.",
				Hashtags:           "#BuildingConnections #Infrastructure",
				CallToAction:       "Which area needs better connectivity? Tell us below.",
				Status:             StatusApproved,
				CreatedAt:          now.Add(-48 * time.Hour),
			},
			ScheduledDate: now.Add(48 * time.Hour),
			ApprovedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID: "evt-sample-3",
			Draft: Draft{
				ID:                 "sample-5",
				Platform:           PlatformWhatsApp,
				Pillar:             "D - Healthcare Access",
				ToneLevel:          "Level 3 - Inspirational",
				Objective:          ObjectiveEngagement,
				PostText:           "Free health camp this Sunday at the community center. Bring your family. 15 specialist doctors available.",
				RecommendedTime:    "Friday 6:00 PM",
				StrategicReasoning: "Healthcare outreach builds grassroots support.",
				CallToAction:       "Forward to family and friends who need medical checkups.",
				Status:             StatusApproved,
				CreatedAt:          now.Add(-72 * time.Hour),
			},
			ScheduledDate: now.Add(72 * time.Hour),
			ApprovedAt:    now.Add(-48 * time.Hour),
		},
	}
}

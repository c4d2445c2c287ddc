package agent

// Info describes one agent for the shell's roster display.
type Info struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Roster lists the three studio agents in display order.
func Roster(contentID, crisisID, strategyID string) []Info {
	return []Info{
		{ID: contentID, Name: "Content Generation", Purpose: "Create campaign posts"},
		{ID: crisisID, Name: "Crisis Response", Purpose: "Analyze attacks & draft responses"},
		{ID: strategyID, Name: "Strategy Advisor", Purpose: "Performance analysis & recommendations"},
	}
}

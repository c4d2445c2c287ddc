package model

import "strings"

// Pillar is one of the six fixed strategic messaging categories, keyed by a
// single letter A-F.
type Pillar struct {
	Letter string `json:"letter"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// PillarColorUnknown is the fallback color token for text that does not map
// into the table.
const PillarColorUnknown = "muted"

var Pillars = []Pillar{
	{Letter: "A", Label: "Economic Development", Color: "hsl(27,61%,35%)"},
	{Letter: "B", Label: "Infrastructure & Connectivity", Color: "hsl(36,60%,31%)"},
	{Letter: "C", Label: "Education & Skills", Color: "hsl(30,50%,40%)"},
	{Letter: "D", Label: "Healthcare Access", Color: "hsl(20,45%,45%)"},
	{Letter: "E", Label: "Cultural Heritage & Unity", Color: "hsl(15,55%,38%)"},
	{Letter: "F", Label: "Security & Governance", Color: "hsl(43,74%,49%)"},
}

var pillarsByLetter = func() map[string]Pillar {
	m := make(map[string]Pillar, len(Pillars))
	for _, p := range Pillars {
		m[p.Letter] = p
	}
	return m
}()

// PillarLetter maps free-form pillar text to its table letter via the first
// character. Returns "" when the text does not start with a known letter.
func PillarLetter(pillar string) string {
	if pillar == "" {
		return ""
	}
	first := strings.ToUpper(pillar[:1])
	if _, ok := pillarsByLetter[first]; ok {
		return first
	}
	return ""
}

// PillarLabel returns the table label for the pillar text, or the text itself
// when it is outside the table.
func PillarLabel(pillar string) string {
	if p, ok := pillarsByLetter[PillarLetter(pillar)]; ok {
		return p.Label
	}
	return pillar
}

// PillarColor returns the color token for the pillar text.
func PillarColor(pillar string) string {
	if p, ok := pillarsByLetter[PillarLetter(pillar)]; ok {
		return p.Color
	}
	return PillarColorUnknown
}

// PillarDisplay expands a bare letter into its "A - Economic Development"
// form. Anything outside the table passes through unchanged.
func PillarDisplay(pillar string) string {
	if p, ok := pillarsByLetter[strings.ToUpper(pillar)]; ok {
		return p.Letter + " - " + p.Label
	}
	return pillar
}

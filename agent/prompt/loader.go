package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/fraud.txt
	fraudRaw string

	//go:embed template/lead.txt
	leadRaw string

	//go:embed template/tutor.txt
	tutorRaw string

	//go:embed template/barista.txt
	baristaRaw string
)

// PromptSet holds the instruction text handed to the voice runtime for each
// agent.
type PromptSet struct {
	Fraud   string
	Lead    string
	Tutor   string
	Barista string
}

// LoadPromptSet returns the trimmed instruction texts.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Fraud:   strings.TrimSpace(fraudRaw),
		Lead:    strings.TrimSpace(leadRaw),
		Tutor:   strings.TrimSpace(tutorRaw),
		Barista: strings.TrimSpace(baristaRaw),
	}
}

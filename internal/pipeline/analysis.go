package pipeline

import (
	"encoding/json"

	"promob/internal"
)

// QuestionOption is one choice offered to the reviewer.
type QuestionOption struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Question asks the reviewer to confirm a hardware choice. Its answer comes
// back as an override list.
type Question struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Options  []QuestionOption `json:"options"`
}

// Analysis is the structured-mode record handed to whoever supplies the
// hinge and slide overrides.
type Analysis struct {
	DobradicasFound        []string               `json:"dobradicas_found"`
	CorredicasFound        []string               `json:"corredicas_found"`
	UnknownItems           []internal.UnknownItem `json:"unknown_items"`
	NeedsDobradicaQuestion bool                   `json:"needs_dobradica_question"`
	NeedsCorredicaQuestion bool                   `json:"needs_corredica_question"`
	Questions              []Question             `json:"questions"`
}

func Analyze(res *Result) Analysis {
	dobradicas := res.Hardware.Found(internal.HardwareDobradica)
	corredicas := res.Hardware.Found(internal.HardwareCorredica)

	unknown := make([]internal.UnknownItem, len(res.Unknown))
	copy(unknown, res.Unknown)

	return Analysis{
		DobradicasFound:        dobradicas,
		CorredicasFound:        corredicas,
		UnknownItems:           unknown,
		NeedsDobradicaQuestion: true,
		NeedsCorredicaQuestion: true,
		Questions: []Question{
			newHardwareQuestion(string(internal.HardwareDobradica), "Quais dobradiças serão usadas no projeto?", dobradicas),
			newHardwareQuestion(string(internal.HardwareCorredica), "Quais corrediças serão usadas no projeto?", corredicas),
		},
	}
}

func newHardwareQuestion(id, text string, found []string) Question {
	options := make([]QuestionOption, 0, len(found))
	for _, v := range found {
		options = append(options, QuestionOption{Label: v, Description: "encontrado no projeto"})
	}
	return Question{ID: id, Question: text, Options: options}
}

func (a Analysis) JSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

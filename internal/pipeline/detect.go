package pipeline

import (
	"strings"

	"promob/internal/util"
)

type DetectResult struct {
	IsSpec bool
	Score  float64
	Reason string
}

// DetectSpecText scores how much text looks like a project export: field
// lines carrying known labels under recognizable section headers.
func DetectSpecText(text string) DetectResult {
	lines := util.SplitLines(text)
	if len(lines) == 0 {
		return DetectResult{IsSpec: false, Score: 0, Reason: "empty"}
	}

	fieldLines, knownLabels, knownHeaders := 0, 0, 0
	for _, line := range lines {
		if !strings.HasPrefix(line, fieldMarker) {
			if classifyHeader(line) != headerOrdinary {
				knownHeaders++
			}
			continue
		}
		label, _, found := strings.Cut(strings.TrimPrefix(line, fieldMarker), ":")
		if !found {
			continue
		}
		fieldLines++
		label = strings.TrimSpace(label)
		if _, skipped := skippedFields[label]; skipped || IsMapped(label) {
			knownLabels++
		}
	}

	score := 0.5 * float64(fieldLines) / float64(len(lines))
	if fieldLines > 0 {
		score += 0.4 * float64(knownLabels) / float64(fieldLines)
	}
	if knownHeaders > 0 {
		score += 0.1
	}
	if score > 1 {
		score = 1
	}

	isSpec := score >= 0.45
	reason := "rules_negative"
	if isSpec {
		reason = "rules_positive"
	}
	return DetectResult{IsSpec: isSpec, Score: score, Reason: reason}
}

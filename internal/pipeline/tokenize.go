package pipeline

import (
	"iter"
	"strings"

	"promob/internal"
	"promob/internal/util"
)

type headerKind int

const (
	headerOrdinary headerKind = iota
	headerIgnored
	headerEnvironment
)

func classifyHeader(name string) headerKind {
	if _, ok := ignoredSections[name]; ok {
		return headerIgnored
	}
	if _, ok := environmentSections[name]; ok {
		return headerEnvironment
	}
	return headerOrdinary
}

// Tokenize yields one Record per usable field line of text. Lines under an
// ignored section header produce nothing until the next header.
func Tokenize(text string) iter.Seq[internal.Record] {
	return func(yield func(internal.Record) bool) {
		section := ""
		ignore := false
		for _, line := range util.SplitLines(text) {
			if !strings.HasPrefix(line, fieldMarker) {
				switch classifyHeader(line) {
				case headerIgnored:
					ignore = true
				case headerEnvironment, headerOrdinary:
					// Environment titles are never rendered, but unknown
					// items found under them still report where they came from.
					ignore = false
					section = line
				}
				continue
			}
			if ignore {
				continue
			}

			rec, ok := parseFieldLine(strings.TrimPrefix(line, fieldMarker))
			if !ok {
				continue
			}
			rec.Section = section
			if !yield(rec) {
				return
			}
		}
	}
}

func parseFieldLine(body string) (internal.Record, bool) {
	label, rawValues, found := strings.Cut(body, ":")
	if !found {
		return internal.Record{}, false
	}
	label = strings.TrimSpace(label)
	if _, skip := skippedFields[label]; skip {
		return internal.Record{}, false
	}
	values := util.SplitList(rawValues)
	if len(values) == 0 {
		return internal.Record{}, false
	}
	return internal.Record{Field: label, Values: values}, true
}

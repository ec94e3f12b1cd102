package pipeline

import (
	"slices"
	"strings"

	"promob/internal"
)

// Overrides replace the parsed hinge and slide lists in the report. A nil or
// empty list means "use what was parsed".
type Overrides struct {
	Dobradica []string
	Corredica []string
}

// Group is one block of a report section. An empty Heading renders the
// lines bare.
type Group struct {
	Heading string
	Lines   []string
}

type ReportSection struct {
	Title    string
	Category internal.Category
	Groups   []Group
}

type Report struct {
	Sections []ReportSection
}

// Render builds the report for res. It only reads res, so rendering the
// same result twice gives the same report.
func Render(res *Result, ov Overrides) Report {
	r := renderer{res: res, overrides: map[string][]string{}}
	if len(ov.Dobradica) > 0 {
		r.overrides[subDobradica] = ov.Dobradica
	}
	if len(ov.Corredica) > 0 {
		r.overrides[subCorredica] = ov.Corredica
	}

	report := Report{Sections: []ReportSection{}}
	for _, layout := range reportLayout {
		if section, ok := r.section(layout); ok {
			report.Sections = append(report.Sections, section)
		}
	}
	return report
}

type renderer struct {
	res       *Result
	overrides map[string][]string
}

func (r renderer) section(layout sectionLayout) (ReportSection, bool) {
	buckets := r.res.Store.Buckets(layout.Category)

	var extra []string
	if layout.Category == internal.CategoryHardware {
		for _, sub := range layout.Order {
			if _, ok := r.overrides[sub]; ok {
				extra = append(extra, sub)
			}
		}
	}

	glass := []string{}
	if layout.Category == internal.CategoryGlassDoor {
		glass = r.res.Store.Glass()
	}

	if len(buckets) == 0 && len(extra) == 0 && len(glass) == 0 {
		return ReportSection{}, false
	}

	section := ReportSection{Title: layout.Title, Category: layout.Category, Groups: []Group{}}
	var pairs []sidePair
	if layout.Category == internal.CategoryPassageDoors {
		pairs = passageDoorPairs
	}
	done := map[string]bool{}

	for _, sub := range orderedSubcategories(buckets, layout.Order, extra) {
		if done[sub] {
			continue
		}
		if pair, ok := findPair(pairs, sub); ok {
			done[pair.External], done[pair.Internal] = true, true
			section.Groups = append(section.Groups, combinePair(buckets, pair))
			continue
		}
		done[sub] = true
		section.Groups = append(section.Groups, r.group(layout.Category, buckets, sub))
	}

	if len(glass) > 0 {
		section.Groups = append(section.Groups, Group{Heading: glassHeading, Lines: glass})
	}
	return section, true
}

func (r renderer) group(cat internal.Category, buckets Buckets, sub string) Group {
	heading := sub
	if sub == ItemsBucket {
		heading = ""
	}

	if cat == internal.CategoryHardware {
		if lines, ok := r.overrides[sub]; ok {
			return Group{Heading: heading, Lines: slices.Clone(lines)}
		}
	}

	values := buckets.Values(sub)
	if cat == internal.CategoryHandles && sub == ItemsBucket && r.res.Context != "" {
		for i, v := range values {
			if strings.Contains(v, contextMatch) {
				values[i] = r.res.Context + " - " + v
			}
		}
		slices.Sort(values)
	}
	return Group{Heading: heading, Lines: values}
}

// orderedSubcategories puts the unlabeled bucket first, then the preferred
// order, then whatever else was parsed in byte order. extra names
// subcategories to emit even when nothing was parsed for them.
func orderedSubcategories(buckets Buckets, order, extra []string) []string {
	keys := []string{}
	seen := map[string]bool{}
	add := func(sub string) {
		if !seen[sub] {
			seen[sub] = true
			keys = append(keys, sub)
		}
	}

	if buckets.Has(ItemsBucket) {
		add(ItemsBucket)
	}
	for _, sub := range order {
		if buckets.Has(sub) || slices.Contains(extra, sub) {
			add(sub)
		}
	}
	for _, sub := range buckets.Subcategories() {
		add(sub)
	}
	return keys
}

func findPair(pairs []sidePair, sub string) (sidePair, bool) {
	for _, p := range pairs {
		if p.External == sub || p.Internal == sub {
			return p, true
		}
	}
	return sidePair{}, false
}

// combinePair renders both sides on one line, e.g.
// "Branco TX (Externo) / Freijó (Interno)".
func combinePair(buckets Buckets, pair sidePair) Group {
	parts := []string{}
	if values := buckets.Values(pair.External); len(values) > 0 {
		parts = append(parts, strings.Join(values, ", ")+" (Externo)")
	}
	if values := buckets.Values(pair.Internal); len(values) > 0 {
		parts = append(parts, strings.Join(values, ", ")+" (Interno)")
	}
	return Group{Heading: pair.Label, Lines: []string{strings.Join(parts, " / ")}}
}

// Text joins the report into the line-oriented form: sections separated by
// a blank line, a blank line before every group, no leading blank lines.
func (r Report) Text() string {
	lines := []string{}
	for _, section := range r.Sections {
		lines = append(lines, "", section.Title)
		for _, group := range section.Groups {
			lines = append(lines, "")
			if group.Heading != "" {
				lines = append(lines, group.Heading+":")
			}
			lines = append(lines, group.Lines...)
		}
	}
	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

// FormatUnknown lists unknown items as "field: value (section)" lines.
func FormatUnknown(items []internal.UnknownItem) string {
	if len(items) == 0 {
		return ""
	}
	lines := []string{"--- UNKNOWN ITEMS ---"}
	for _, item := range items {
		lines = append(lines, item.Field+": "+item.Value+" ("+item.Section+")")
	}
	return strings.Join(lines, "\n")
}

package pipeline

import "promob/internal"

// Result is everything one parse produces. Each call to Parse builds a new
// Result; nothing is shared between runs.
type Result struct {
	Store    *Store
	Unknown  []internal.UnknownItem
	Hardware HardwareTracking

	// Context is the last profile model seen in a context field, empty when
	// none was seen. It prefixes matching handle items when rendering.
	Context string

	Records int
}

func Parse(text string) *Result {
	res := &Result{Store: NewStore(), Unknown: []internal.UnknownItem{}}
	for rec := range Tokenize(text) {
		res.Classify(rec)
	}
	return res
}

// Classify files every value of rec into the store, the context slot or the
// unknown list.
func (r *Result) Classify(rec internal.Record) {
	r.Records++

	target, ok := fieldMapping[rec.Field]
	if !ok {
		section := rec.Section
		if section == "" {
			section = unknownSection
		}
		for _, value := range rec.Values {
			r.Unknown = append(r.Unknown, internal.UnknownItem{Field: rec.Field, Value: value, Section: section})
		}
		return
	}

	if target.Category == internal.CategoryContext {
		for _, value := range rec.Values {
			if cleaned := CleanValue(value, rec.Field); cleaned != "" {
				r.Context = cleaned
			}
		}
		return
	}

	kind, tracked := trackedFields[rec.Field]
	for _, value := range rec.Values {
		cleaned := CleanValue(value, rec.Field)
		if !r.Store.Add(target.Category, target.Subcategory, cleaned) {
			continue
		}
		if tracked {
			r.Hardware.add(kind, cleaned)
		}
	}
}

// IsMapped reports whether field has an entry in the classification table.
func IsMapped(field string) bool {
	_, ok := fieldMapping[field]
	return ok
}

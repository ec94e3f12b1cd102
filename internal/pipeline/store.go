package pipeline

import (
	"slices"

	"promob/internal"
)

type valueSet map[string]struct{}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Buckets maps a subcategory name to its set of cleaned values.
type Buckets map[string]valueSet

func (b Buckets) Has(sub string) bool {
	_, ok := b[sub]
	return ok
}

// Values returns the values stored under sub in byte order.
func (b Buckets) Values(sub string) []string {
	return b[sub].sorted()
}

func (b Buckets) Subcategories() []string {
	out := make([]string, 0, len(b))
	for sub := range b {
		out = append(out, sub)
	}
	slices.Sort(out)
	return out
}

// Store holds the categorized values of one parse. A category that never
// received a value stays nil, which is how the renderer knows to skip it.
type Store struct {
	box          Buckets
	doorsFronts  Buckets
	handles      Buckets
	glassDoor    Buckets
	hardware     Buckets
	panels       Buckets
	accessories  Buckets
	metalwork    Buckets
	passageDoors Buckets
	glass        valueSet
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Box() Buckets          { return s.box }
func (s *Store) DoorsFronts() Buckets  { return s.doorsFronts }
func (s *Store) Handles() Buckets      { return s.handles }
func (s *Store) GlassDoor() Buckets    { return s.glassDoor }
func (s *Store) Hardware() Buckets     { return s.hardware }
func (s *Store) Panels() Buckets       { return s.panels }
func (s *Store) Accessories() Buckets  { return s.accessories }
func (s *Store) Metalwork() Buckets    { return s.metalwork }
func (s *Store) PassageDoors() Buckets { return s.passageDoors }

// Glass returns the flat glass list in byte order.
func (s *Store) Glass() []string { return s.glass.sorted() }

// Buckets returns the subcategory map of a bucketed category, nil for the
// flat glass category and for categories that are not destinations.
func (s *Store) Buckets(cat internal.Category) Buckets {
	if ptr := s.bucketsRef(cat); ptr != nil {
		return *ptr
	}
	return nil
}

// Categories lists the categories holding at least one value.
func (s *Store) Categories() []internal.Category {
	out := []internal.Category{}
	for _, layout := range reportLayout {
		if len(s.Buckets(layout.Category)) > 0 {
			out = append(out, layout.Category)
		}
	}
	if len(s.glass) > 0 {
		out = append(out, internal.CategoryGlass)
	}
	return out
}

func (s *Store) bucketsRef(cat internal.Category) *Buckets {
	switch cat {
	case internal.CategoryBox:
		return &s.box
	case internal.CategoryDoorsFronts:
		return &s.doorsFronts
	case internal.CategoryHandles:
		return &s.handles
	case internal.CategoryGlassDoor:
		return &s.glassDoor
	case internal.CategoryHardware:
		return &s.hardware
	case internal.CategoryPanels:
		return &s.panels
	case internal.CategoryAccessories:
		return &s.accessories
	case internal.CategoryMetalwork:
		return &s.metalwork
	case internal.CategoryPassageDoors:
		return &s.passageDoors
	default:
		return nil
	}
}

// Add stores a non-empty value. It reports false when the value is empty or
// cat is not a destination category.
func (s *Store) Add(cat internal.Category, sub, value string) bool {
	if value == "" {
		return false
	}
	if cat == internal.CategoryGlass {
		if s.glass == nil {
			s.glass = valueSet{}
		}
		s.glass[value] = struct{}{}
		return true
	}

	ref := s.bucketsRef(cat)
	if ref == nil {
		return false
	}
	if sub == unlabeledSub {
		sub = ItemsBucket
	}
	if *ref == nil {
		*ref = Buckets{}
	}
	set, ok := (*ref)[sub]
	if !ok {
		set = valueSet{}
		(*ref)[sub] = set
	}
	set[value] = struct{}{}
	return true
}

// HardwareTracking collects the hinge and slide values seen during a parse
// so a reviewer can be asked which ones the project really uses.
type HardwareTracking struct {
	Dobradicas valueSet
	Corredicas valueSet
}

func (h *HardwareTracking) add(kind internal.HardwareKind, value string) {
	switch kind {
	case internal.HardwareDobradica:
		if h.Dobradicas == nil {
			h.Dobradicas = valueSet{}
		}
		h.Dobradicas[value] = struct{}{}
	case internal.HardwareCorredica:
		if h.Corredicas == nil {
			h.Corredicas = valueSet{}
		}
		h.Corredicas[value] = struct{}{}
	}
}

func (h HardwareTracking) Found(kind internal.HardwareKind) []string {
	switch kind {
	case internal.HardwareDobradica:
		return h.Dobradicas.sorted()
	case internal.HardwareCorredica:
		return h.Corredicas.sorted()
	default:
		return []string{}
	}
}

package catalog

import (
	"slices"
	"strings"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// Filter selects shirts by size and color. An empty field places no
// restriction on that dimension; within a field any listed value matches.
type Filter struct {
	Sizes  []models.Size  `json:"sizes,omitempty"`
	Colors []models.Color `json:"colors,omitempty"`
}

// Validate returns an *InvalidFilterError for the first value that is not
// an enumeration member.
func (f Filter) Validate() error {
	for _, s := range f.Sizes {
		if !s.Valid() {
			return &InvalidFilterError{Field: "size", Value: string(s)}
		}
	}
	for _, c := range f.Colors {
		if !c.Valid() {
			return &InvalidFilterError{Field: "color", Value: string(c)}
		}
	}
	return nil
}

// Matches reports whether a shirt passes both restrictions.
func (f Filter) Matches(s models.Shirt) bool {
	return f.matchesSize(s) && f.matchesColor(s)
}

func (f Filter) matchesSize(s models.Shirt) bool {
	return len(f.Sizes) == 0 || slices.Contains(f.Sizes, s.Size)
}

func (f Filter) matchesColor(s models.Shirt) bool {
	return len(f.Colors) == 0 || slices.Contains(f.Colors, s.Color)
}

// ParseFilter builds a Filter from user-supplied names. Blank entries are
// skipped; unknown names yield an *InvalidFilterError.
func ParseFilter(sizes, colors []string) (Filter, error) {
	var f Filter
	for _, raw := range sizes {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s, ok := models.ParseSize(raw)
		if !ok {
			return Filter{}, &InvalidFilterError{Field: "size", Value: raw}
		}
		f.Sizes = append(f.Sizes, s)
	}
	for _, raw := range colors {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		c, ok := models.ParseColor(raw)
		if !ok {
			return Filter{}, &InvalidFilterError{Field: "color", Value: raw}
		}
		f.Colors = append(f.Colors, c)
	}
	return f, nil
}

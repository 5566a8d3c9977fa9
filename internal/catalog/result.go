package catalog

import "github.com/HerbHall/shirtsearch/pkg/models"

// SizeCount is the number of shirts of one size that pass the color
// restriction of a filter.
type SizeCount struct {
	Size  models.Size `json:"size"`
	Count int         `json:"count"`
}

// ColorCount is the number of shirts of one color that pass the size
// restriction of a filter.
type ColorCount struct {
	Color  models.Color `json:"color"`
	Count  int          `json:"count"`
	Swatch string       `json:"swatch"`
}

// Result is the outcome of one Search. Shirts keep catalog order; the
// count tables list every enumeration member in canonical order.
type Result struct {
	Shirts      []models.Shirt `json:"shirts"`
	SizeCounts  []SizeCount    `json:"size_counts"`
	ColorCounts []ColorCount   `json:"color_counts"`
}

// SizeCountFor returns the facet count for s, or 0 if s is not listed.
func (r *Result) SizeCountFor(s models.Size) int {
	for i := range r.SizeCounts {
		if r.SizeCounts[i].Size == s {
			return r.SizeCounts[i].Count
		}
	}
	return 0
}

// ColorCountFor returns the facet count for c, or 0 if c is not listed.
func (r *Result) ColorCountFor(c models.Color) int {
	for i := range r.ColorCounts {
		if r.ColorCounts[i].Color == c {
			return r.ColorCounts[i].Count
		}
	}
	return 0
}

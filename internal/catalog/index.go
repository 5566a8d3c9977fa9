package catalog

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// facetIndex partitions catalog positions by size and by color. Bitmaps
// hold positions into Engine.shirts, so ascending iteration is catalog
// order. Nothing in the index is written after buildIndex returns.
type facetIndex struct {
	all     *roaring.Bitmap
	bySize  []*roaring.Bitmap // by models.Size ordinal
	byColor []*roaring.Bitmap // by models.Color ordinal

	sizeTotals  map[string]int
	colorTotals map[string]int
}

// buildIndex walks the catalog once. Every shirt must already carry a
// valid size and color.
func buildIndex(shirts []models.Shirt) *facetIndex {
	sizes := models.AllSizes()
	colors := models.AllColors()

	idx := &facetIndex{
		all:         roaring.New(),
		bySize:      newBitmaps(len(sizes)),
		byColor:     newBitmaps(len(colors)),
		sizeTotals:  make(map[string]int, len(sizes)),
		colorTotals: make(map[string]int, len(colors)),
	}

	idx.all.AddRange(0, uint64(len(shirts)))
	for i := range shirts {
		pos := uint32(i) //nolint:gosec // NewEngine bounds len(shirts) to uint32
		idx.bySize[shirts[i].Size.Ordinal()].Add(pos)
		idx.byColor[shirts[i].Color.Ordinal()].Add(pos)
	}

	idx.all.RunOptimize()
	for i, s := range sizes {
		idx.bySize[i].RunOptimize()
		idx.sizeTotals[s.Name()] = int(idx.bySize[i].GetCardinality())
	}
	for i, c := range colors {
		idx.byColor[i].RunOptimize()
		idx.colorTotals[c.Name()] = int(idx.byColor[i].GetCardinality())
	}
	return idx
}

func newBitmaps(n int) []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, n)
	for i := range out {
		out[i] = roaring.New()
	}
	return out
}

// sizeMask returns the positions allowed by a size restriction. The
// returned bitmap may be shared with the index and must not be modified.
func (idx *facetIndex) sizeMask(sizes []models.Size) *roaring.Bitmap {
	if len(sizes) == 0 {
		return idx.all
	}
	parts := make([]*roaring.Bitmap, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, idx.bySize[s.Ordinal()])
	}
	return roaring.FastOr(parts...)
}

// colorMask is the color counterpart of sizeMask.
func (idx *facetIndex) colorMask(colors []models.Color) *roaring.Bitmap {
	if len(colors) == 0 {
		return idx.all
	}
	parts := make([]*roaring.Bitmap, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, idx.byColor[c.Ordinal()])
	}
	return roaring.FastOr(parts...)
}

// colorCounts counts, for every color, the shirts of that color that
// pass sizeMask. Only the color's own partition is visited.
func (idx *facetIndex) colorCounts(sizeMask *roaring.Bitmap) []ColorCount {
	colors := models.AllColors()
	out := make([]ColorCount, len(colors))
	for i, c := range colors {
		out[i] = ColorCount{Color: c, Count: int(idx.byColor[i].AndCardinality(sizeMask)), Swatch: c.Swatch()}
	}
	return out
}

// sizeCounts counts, for every size, the shirts of that size that pass
// colorMask.
func (idx *facetIndex) sizeCounts(colorMask *roaring.Bitmap) []SizeCount {
	sizes := models.AllSizes()
	out := make([]SizeCount, len(sizes))
	for i, s := range sizes {
		out[i] = SizeCount{Size: s, Count: int(idx.bySize[i].AndCardinality(colorMask))}
	}
	return out
}

// Package catalog provides the faceted search engine over an immutable
// shirt catalog.
package catalog

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/zap"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// Engine answers facet searches over a fixed catalog snapshot. It is safe
// for concurrent use; no method writes to engine state after NewEngine.
type Engine struct {
	shirts  []models.Shirt
	index   *facetIndex
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards all output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics attaches search metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine validates the shirts, copies them and builds the facet index.
// A shirt with an unknown size or color yields an *InvalidItemError.
func NewEngine(shirts []models.Shirt, opts ...Option) (*Engine, error) {
	if uint64(len(shirts)) > math.MaxUint32 {
		return nil, fmt.Errorf("catalog: %d shirts exceeds the index limit of %d", len(shirts), uint64(math.MaxUint32))
	}
	for i := range shirts {
		if !shirts[i].Size.Valid() {
			return nil, &InvalidItemError{Index: i, ShirtID: shirts[i].ID, Field: "size", Value: string(shirts[i].Size)}
		}
		if !shirts[i].Color.Valid() {
			return nil, &InvalidItemError{Index: i, ShirtID: shirts[i].ID, Field: "color", Value: string(shirts[i].Color)}
		}
	}

	e := &Engine{
		shirts: slices.Clone(shirts),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	start := time.Now()
	e.index = buildIndex(e.shirts)
	e.logger.Info("facet index built",
		zap.Int("shirts", len(e.shirts)),
		zap.Any("sizes", e.index.sizeTotals),
		zap.Any("colors", e.index.colorTotals),
		zap.Duration("duration", time.Since(start)),
	)
	return e, nil
}

// Search returns the shirts matching f together with the facet counts for
// every size and color.
//
// ColorCounts ignore f.Colors: each entry is the number of shirts of that
// color passing the size restriction. SizeCounts likewise ignore f.Sizes.
// The returned Result is freshly allocated and owned by the caller.
func (e *Engine) Search(f Filter) (*Result, error) {
	start := time.Now()
	if err := f.Validate(); err != nil {
		e.metrics.observeInvalid()
		return nil, err
	}

	sizeMask := e.index.sizeMask(f.Sizes)
	colorMask := e.index.colorMask(f.Colors)
	matches := roaring.And(sizeMask, colorMask)

	res := &Result{
		Shirts:      make([]models.Shirt, 0, matches.GetCardinality()),
		SizeCounts:  e.index.sizeCounts(colorMask),
		ColorCounts: e.index.colorCounts(sizeMask),
	}
	it := matches.Iterator()
	for it.HasNext() {
		res.Shirts = append(res.Shirts, e.shirts[it.Next()])
	}

	elapsed := time.Since(start)
	e.metrics.observe(elapsed, len(res.Shirts))
	e.logger.Debug("search completed",
		zap.Int("sizes", len(f.Sizes)),
		zap.Int("colors", len(f.Colors)),
		zap.Int("matches", len(res.Shirts)),
		zap.Duration("duration", elapsed),
	)
	return res, nil
}

// TotalShirts returns a copy of the full catalog in catalog order. The
// slice is never nil, matching Search(Filter{}).Shirts.
func (e *Engine) TotalShirts() []models.Shirt {
	out := make([]models.Shirt, len(e.shirts))
	copy(out, e.shirts)
	return out
}

// TotalsByColor returns the unfiltered number of shirts per color, keyed
// by display name. Every color is present, including those with no shirts.
func (e *Engine) TotalsByColor() map[string]int {
	return maps.Clone(e.index.colorTotals)
}

// TotalsBySize returns the unfiltered number of shirts per size, keyed by
// display name.
func (e *Engine) TotalsBySize() map[string]int {
	return maps.Clone(e.index.sizeTotals)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HerbHall/shirtsearch/internal/catalog"
	"github.com/HerbHall/shirtsearch/pkg/models"
)

func runBench(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	cf := addCommonFlags(fs)
	workers := fs.Int("workers", 0, "concurrent workers; overrides bench.workers")
	queries := fs.Int("queries", -1, "total searches; overrides bench.queries")
	seed := fs.Uint64("seed", 1, "random seed for filter generation")

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := setup(cf)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	if *workers > 0 {
		e.settings.Bench.Workers = *workers
	}
	if *queries >= 0 {
		e.settings.Bench.Queries = *queries
	}

	reg := prometheus.NewRegistry()
	engine, err := e.newEngine(catalog.WithMetrics(catalog.NewMetrics(reg)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := benchSearches(ctx, engine, e.settings.Bench.Workers, e.settings.Bench.Queries, *seed); err != nil {
		return err
	}
	elapsed := time.Since(start)
	e.logger.Info("bench finished",
		zap.Int("workers", e.settings.Bench.Workers),
		zap.Int("queries", e.settings.Bench.Queries),
		zap.Duration("elapsed", elapsed),
	)

	fmt.Fprintf(out, "%d searches across %d workers in %s\n", e.settings.Bench.Queries, e.settings.Bench.Workers, elapsed)
	return writeMetrics(out, reg)
}

// benchSearches spreads queries across workers, each drawing random
// filters from its own generator.
func benchSearches(ctx context.Context, engine *catalog.Engine, workers, queries int, seed uint64) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := queries / workers
		if w < queries%workers {
			n++
		}
		rng := rand.New(rand.NewPCG(seed, uint64(w)))
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := engine.Search(randomFilter(rng)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func randomFilter(rng *rand.Rand) catalog.Filter {
	var f catalog.Filter
	for _, s := range models.AllSizes() {
		if rng.IntN(3) == 0 {
			f.Sizes = append(f.Sizes, s)
		}
	}
	for _, c := range models.AllColors() {
		if rng.IntN(3) == 0 {
			f.Colors = append(f.Colors, c)
		}
	}
	return f
}

// writeMetrics prints counters and histogram summaries from reg.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(out, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				mean := 0.0
				if h.GetSampleCount() > 0 {
					mean = h.GetSampleSum() / float64(h.GetSampleCount())
				}
				fmt.Fprintf(out, "%s count=%d mean=%g\n", name, h.GetSampleCount(), mean)
			}
		}
	}
	return nil
}

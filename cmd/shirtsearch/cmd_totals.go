package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

// totalsResponse is the JSON shape of `shirtsearch totals -format json`.
type totalsResponse struct {
	Shirts  int            `json:"shirts"`
	BySize  map[string]int `json:"by_size"`
	ByColor map[string]int `json:"by_color"`
}

func runTotals(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("totals", flag.ContinueOnError)
	cf := addCommonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := setup(cf)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	engine, err := e.newEngine()
	if err != nil {
		return err
	}

	bySize, byColor := engine.TotalsBySize(), engine.TotalsByColor()
	if e.settings.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(totalsResponse{
			Shirts:  len(engine.TotalShirts()),
			BySize:  bySize,
			ByColor: byColor,
		})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FACET\tVALUE\tSHIRTS\tSWATCH")
	for _, s := range models.AllSizes() {
		fmt.Fprintf(tw, "size\t%s\t%d\t\n", s.Name(), bySize[s.Name()])
	}
	for _, c := range models.AllColors() {
		fmt.Fprintf(tw, "color\t%s\t%d\t%s\n", c.Name(), byColor[c.Name()], c.Swatch())
	}
	fmt.Fprintf(tw, "total\t\t%d\t\n", len(engine.TotalShirts()))
	return tw.Flush()
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/HerbHall/shirtsearch/internal/catalog"
)

func runSearch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	cf := addCommonFlags(fs)
	sizes := fs.String("sizes", "", "comma-separated sizes to allow (empty = any)")
	colors := fs.String("colors", "", "comma-separated colors to allow (empty = any)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := catalog.ParseFilter(splitList(*sizes), splitList(*colors))
	if err != nil {
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
	res, err := engine.Search(filter)
	if err != nil {
		return err
	}

	if e.settings.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return writeSearchTable(out, res)
}

func writeSearchTable(out io.Writer, res *catalog.Result) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tCOLOR")
	for _, s := range res.Shirts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Size.Name(), s.Color.Name())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sizes := make([]string, 0, len(res.SizeCounts))
	for _, sc := range res.SizeCounts {
		sizes = append(sizes, fmt.Sprintf("%s (%d)", sc.Size.Name(), sc.Count))
	}
	colors := make([]string, 0, len(res.ColorCounts))
	for _, cc := range res.ColorCounts {
		colors = append(colors, fmt.Sprintf("%s (%d)", cc.Color.Name(), cc.Count))
	}
	_, err := fmt.Fprintf(out, "\n%d shirts\nSizes:  %s\nColors: %s\n",
		len(res.Shirts), strings.Join(sizes, "  "), strings.Join(colors, "  "))
	return err
}

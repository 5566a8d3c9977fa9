package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/HerbHall/shirtsearch/internal/version"
)

func runVersion(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	format := fs.String("format", "text", "output format: text or json")

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *format {
	case "text":
		_, err := fmt.Fprintln(out, version.Info())
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(version.Map())
	default:
		return fmt.Errorf("-format must be text or json, got %q", *format)
	}
}

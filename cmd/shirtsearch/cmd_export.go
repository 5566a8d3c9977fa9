package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	pkgcatalog "github.com/HerbHall/shirtsearch/pkg/catalog"
)

func runExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cf := addCommonFlags(fs)
	output := fs.String("output", "", "output CSV file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := setup(cf)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	// Building the engine validates the catalog before it is written out.
	engine, err := e.newEngine()
	if err != nil {
		return err
	}
	shirts := engine.TotalShirts()

	if *output == "" {
		return pkgcatalog.WriteCSV(out, shirts)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %s: %w", *output, err)
	}
	if err := pkgcatalog.WriteCSV(f, shirts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.logger.Info("catalog exported", zap.String("path", *output), zap.Int("shirts", len(shirts)))
	return nil
}

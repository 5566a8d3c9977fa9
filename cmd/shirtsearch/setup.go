package main

import (
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HerbHall/shirtsearch/internal/catalog"
	"github.com/HerbHall/shirtsearch/internal/config"
	"github.com/HerbHall/shirtsearch/internal/version"
	pkgcatalog "github.com/HerbHall/shirtsearch/pkg/catalog"
	"github.com/HerbHall/shirtsearch/pkg/models"
)

// commonFlags are accepted by every command that loads a catalog.
type commonFlags struct {
	config  *string
	catalog *string
	format  *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config:  fs.String("config", "", "path to configuration file"),
		catalog: fs.String("catalog", "", "catalog file (.yaml or .csv); overrides catalog.path"),
		format:  fs.String("format", "", "output format: table or json; overrides output.format"),
	}
}

// env is what a command needs once flags and configuration are resolved.
type env struct {
	settings config.Settings
	logger   *zap.Logger
}

func setup(cf commonFlags) (*env, error) {
	cfg, err := config.Load(*cf.config)
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	if *cf.catalog != "" {
		settings.Catalog.Path = *cf.catalog
	}
	if *cf.format != "" {
		if *cf.format != "table" && *cf.format != "json" {
			return nil, fmt.Errorf("-format must be table or json, got %q", *cf.format)
		}
		settings.Output.Format = *cf.format
	}

	logger, err := newLogger(settings.Log.Level, settings.Log.Format)
	if err != nil {
		return nil, err
	}
	logger.Debug("shirtsearch starting", version.Fields()...)
	return &env{settings: settings, logger: logger}, nil
}

// newLogger builds a zap logger writing to stderr so stdout stays clean
// for command output.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadShirts reads the configured catalog, falling back to the embedded one.
func (e *env) loadShirts() ([]models.Shirt, error) {
	if e.settings.Catalog.Path == "" {
		e.logger.Debug("using embedded catalog")
		return pkgcatalog.NewCatalog().Shirts()
	}
	e.logger.Debug("loading catalog", zap.String("path", e.settings.Catalog.Path))
	return pkgcatalog.LoadFile(e.settings.Catalog.Path)
}

func (e *env) newEngine(opts ...catalog.Option) (*catalog.Engine, error) {
	shirts, err := e.loadShirts()
	if err != nil {
		return nil, err
	}
	return catalog.NewEngine(shirts, append([]catalog.Option{catalog.WithLogger(e.logger)}, opts...)...)
}

// splitList splits a comma-separated flag value.
func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return strings.Split(v, ",")
}

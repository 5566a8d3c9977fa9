// Package catalog loads shirt catalog snapshots from the embedded default
// catalog, YAML files and CSV files.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/shirtsearch/pkg/models"
)

//go:embed catalog.yaml
var catalogRawData []byte

// catalogFile is the top-level structure of a YAML catalog.
type catalogFile struct {
	Shirts []models.Shirt `yaml:"shirts"`
}

// Catalog provides lazy-loaded access to the embedded shirt catalog.
type Catalog struct {
	once   sync.Once
	shirts []models.Shirt
	err    error
}

// NewCatalog creates a new Catalog that will parse the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Shirts returns a copy of all catalog shirts.
func (c *Catalog) Shirts() ([]models.Shirt, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]models.Shirt, len(c.shirts))
	copy(cp, c.shirts)
	return cp, nil
}

// load parses the embedded YAML catalog data.
func (c *Catalog) load() {
	c.shirts, c.err = parseYAML(catalogRawData)
}

// LoadFile reads a catalog snapshot from disk. The format is chosen by
// extension: .yaml/.yml or .csv.
func LoadFile(path string) ([]models.Shirt, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		return parseYAML(data)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", filepath.Ext(path))
	}
}

func parseYAML(data []byte) ([]models.Shirt, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	for i := range f.Shirts {
		normalize(&f.Shirts[i])
	}
	return f.Shirts, nil
}

// normalize canonicalises enum spellings and assigns an ID when missing.
// Unknown sizes or colors are left in place for the engine to reject.
func normalize(s *models.Shirt) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.Size, _ = models.ParseSize(string(s.Size))
	s.Color, _ = models.ParseColor(string(s.Color))
}

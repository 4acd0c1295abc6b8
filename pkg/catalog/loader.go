// Package catalog provides the embedded reference drive listing.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/HerbHall/drivepick/pkg/models"
)

//go:embed catalog.yaml
var catalogRawData []byte

// Entry is one line of the embedded listing.
type Entry struct {
	Model     string              `yaml:"model" json:"model"`
	Available models.Availability `yaml:"available" json:"available"`
}

// catalogFile is the top-level structure of the embedded YAML.
type catalogFile struct {
	Manufacturers []string `yaml:"manufacturers"`
	Entries       []Entry  `yaml:"entries"`
}

// Catalog provides lazy-loaded access to the embedded drive listing.
type Catalog struct {
	once          sync.Once
	raw           []byte
	entries       []Entry
	manufacturers []string
	err           error
}

// NewCatalog creates a new Catalog that will parse the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{raw: catalogRawData}
}

// Parse creates a Catalog from caller-supplied YAML in the same format as
// the embedded listing. Parsing is still deferred to first access.
func Parse(data []byte) *Catalog {
	return &Catalog{raw: data}
}

// Entries returns a copy of all catalog entries in listing order.
func (c *Catalog) Entries() ([]Entry, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp, nil
}

// Manufacturers returns a copy of the default manufacturer fragments.
func (c *Catalog) Manufacturers() ([]string, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]string, len(c.manufacturers))
	copy(cp, c.manufacturers)
	return cp, nil
}

// Drives returns the listing as models.Drive values. It satisfies
// selector.Source.
func (c *Catalog) Drives(_ context.Context) ([]models.Drive, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	drives := make([]models.Drive, len(entries))
	for i := range entries {
		drives[i] = models.Drive{
			ID:           fmt.Sprintf("builtin-%d", i),
			Model:        entries[i].Model,
			Availability: entries[i].Available,
			Position:     i,
			Source:       models.SourceBuiltin,
		}
	}
	return drives, nil
}

// load parses the YAML catalog data.
func (c *Catalog) load() {
	var f catalogFile
	if err := yaml.Unmarshal(c.raw, &f); err != nil {
		c.err = fmt.Errorf("catalog: parse yaml: %w", err)
		return
	}
	c.entries = f.Entries
	c.manufacturers = f.Manufacturers
}

// Package catalog loads and validates the celestial body catalog.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"orrerygo/pkg/model"
)

// Catalog holds the ordered, validated set of celestial bodies.
// The order of planets defines rendering order only.
type Catalog struct {
	bodies []model.Body
	byID   map[string]*model.Body
	star   *model.Body
}

type bodiesFile struct {
	Bodies []model.Body `yaml:"bodies"`
}

// Load reads the body catalog from path. If the file does not exist, it is
// created with the default solar system so a fresh install works offline.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return nil, fmt.Errorf("failed to write default catalog: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f bodiesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(f.Bodies)
}

// New builds a Catalog from the given bodies, enforcing the invariants:
// exactly one star, the star at distance 0, planets at distance > 0,
// unique IDs.
func New(bodies []model.Body) (*Catalog, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		bodies: bodies,
		byID:   make(map[string]*model.Body, len(bodies)),
	}

	for i := range c.bodies {
		b := &c.bodies[i]
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("duplicate body id %q", b.ID)
		}
		c.byID[b.ID] = b

		if b.Kind == model.KindStar {
			if c.star != nil {
				return nil, fmt.Errorf("catalog has more than one star (%q and %q)", c.star.ID, b.ID)
			}
			c.star = b
		}
	}

	if c.star == nil {
		return nil, fmt.Errorf("catalog has no star")
	}

	return c, nil
}

// Bodies returns all bodies in catalog order.
func (c *Catalog) Bodies() []model.Body {
	return c.bodies
}

// Get returns the body with the given ID.
func (c *Catalog) Get(id string) (*model.Body, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Star returns the single star of the catalog.
func (c *Catalog) Star() *model.Body {
	return c.star
}

// Len returns the number of bodies.
func (c *Catalog) Len() int {
	return len(c.bodies)
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(bodiesFile{Bodies: DefaultBodies()})
	if err != nil {
		return err
	}

	header := []byte("# Orrery body catalog\n# distance 0 marks the star; planets orbit at distance > 0.\n\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

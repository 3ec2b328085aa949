// Package catalog holds the static registry of scaffolding templates.
//
// The registry is hierarchical: a list of frameworks, each with one or more
// selectable variants. Variant ids double as template identifiers; the
// directory `template-<id>` next to the installed binary is the tree the
// scaffolder copies. The data is pure configuration with no runtime
// mutation.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// ColorTag is a presentation hint for a catalog entry. It carries no
// behavior; rendering is resolved at the presentation boundary (see the ui
// package).
type ColorTag string

const (
	ColorYellow  ColorTag = "yellow"
	ColorGreen   ColorTag = "green"
	ColorCyan    ColorTag = "cyan"
	ColorMagenta ColorTag = "magenta"
	ColorRed     ColorTag = "red"
	ColorBlue    ColorTag = "blue"
)

var knownColors = map[ColorTag]bool{
	ColorYellow:  true,
	ColorGreen:   true,
	ColorCyan:    true,
	ColorMagenta: true,
	ColorRed:     true,
	ColorBlue:    true,
}

// Variant is a single selectable template.
type Variant struct {
	ID          string   `yaml:"id" json:"id"`
	DisplayName string   `yaml:"display" json:"display"`
	Color       ColorTag `yaml:"color" json:"color"`
}

// Framework groups related variants under one top-level choice.
type Framework struct {
	ID          string    `yaml:"id" json:"id"`
	DisplayName string    `yaml:"display" json:"display"`
	Color       ColorTag  `yaml:"color" json:"color"`
	Variants    []Variant `yaml:"variants" json:"variants"`
}

// Catalog is an ordered, validated set of frameworks.
type Catalog struct {
	frameworks []Framework
	ids        []string
	byID       map[string]Variant
}

// Load parses and validates a catalog definition.
func Load(data []byte) (*Catalog, error) {
	var doc struct {
		Frameworks []Framework `yaml:"frameworks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		frameworks: doc.Frameworks,
		byID:       make(map[string]Variant),
	}

	for _, fw := range c.frameworks {
		if len(fw.Variants) == 0 {
			return nil, fmt.Errorf("framework %q has no variants", fw.ID)
		}
		if !knownColors[fw.Color] {
			return nil, fmt.Errorf("framework %q has unknown color %q", fw.ID, fw.Color)
		}
		for _, v := range fw.Variants {
			if _, dup := c.byID[v.ID]; dup {
				return nil, fmt.Errorf("duplicate template id %q", v.ID)
			}
			if !knownColors[v.Color] {
				return nil, fmt.Errorf("variant %q has unknown color %q", v.ID, v.Color)
			}
			c.byID[v.ID] = v
			c.ids = append(c.ids, v.ID)
		}
	}

	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. The embedded definition is
// validated once; a malformed build is a programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(rawCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})

	return defaultCatalog
}

// Frameworks returns the frameworks in catalog order.
func (c *Catalog) Frameworks() []Framework {
	return c.frameworks
}

// TemplateIDs returns every valid template identifier, preserving
// framework order and variant order within each framework.
func (c *Catalog) TemplateIDs() []string {
	return c.ids
}

// IsValid reports whether id names a known template.
func (c *Catalog) IsValid(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Lookup returns the variant for a template id.
func (c *Catalog) Lookup(id string) (Variant, bool) {
	v, ok := c.byID[id]
	return v, ok
}

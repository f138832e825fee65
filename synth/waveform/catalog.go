package waveform

import (
	"fmt"
	"log"
	"sort"
)

// Catalog is an immutable name-to-template registry, built once from
// externally supplied records and safe for concurrent readers.
type Catalog struct {
	templates map[string]Template
}

// WarnFunc receives the name and validation error of a template skipped
// during a lenient load.
type WarnFunc func(name string, err error)

type catalogConfig struct {
	skipInvalid bool
	warn        WarnFunc
}

// CatalogOption configures catalog construction.
type CatalogOption func(*catalogConfig)

// WithSkipInvalid switches the load from abort-on-first-error to
// skip-with-warning. Each rejected template is reported through warn;
// a nil warn logs via the standard logger.
func WithSkipInvalid(warn WarnFunc) CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.skipInvalid = true
		if warn != nil {
			cfg.warn = warn
		}
	}
}

// NewCatalog builds a catalog from the given templates. By default any
// invalid or duplicate template aborts the whole load; see
// WithSkipInvalid for the lenient mode. No partial template is ever
// registered in either mode.
func NewCatalog(templates []Template, opts ...CatalogOption) (*Catalog, error) {
	cfg := catalogConfig{
		warn: func(name string, err error) {
			log.Printf("waveform catalog: skipping %q: %v", name, err)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &Catalog{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		err := t.Validate()
		if err == nil {
			if _, exists := c.templates[t.Name]; exists {
				err = fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
			}
		}

		if err != nil {
			if cfg.skipInvalid {
				cfg.warn(t.Name, err)
				continue
			}
			return nil, err
		}

		c.templates[t.Name] = cloneTemplate(t)
	}

	return c, nil
}

// Lookup returns the template registered under name. An unknown name
// yields ErrNotFound, never a fallback template. The returned template
// is a copy; mutating it does not affect the catalog.
func (c *Catalog) Lookup(name string) (Template, error) {
	t, ok := c.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return cloneTemplate(t), nil
}

// Names returns all registered template names in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

func cloneTemplate(t Template) Template {
	if t.Harmonics != nil {
		harmonics := make([]Harmonic, len(t.Harmonics))
		copy(harmonics, t.Harmonics)
		t.Harmonics = harmonics
	}
	if t.Points != nil {
		points := make([]float64, len(t.Points))
		copy(points, t.Points)
		t.Points = points
	}

	return t
}

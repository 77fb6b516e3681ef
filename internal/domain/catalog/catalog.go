// Package catalog holds the compiled, immutable set of metaobject
// definitions and setup sections the service knows how to configure.
package catalog

import "shopsetup/internal/domain/metaobject"

// SetupSection groups one or more content types into a user-facing
// configuration area.
type SetupSection struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Route       string   `json:"route"`
	Icon        string   `json:"icon"`
	Metaobjects []string `json:"metaobjects"`
}

// Catalog is an immutable view over a set of definition configs and setup
// sections. It is built once and injected into every use case; iteration
// order always follows declaration order.
type Catalog struct {
	definitions map[string]metaobject.DefinitionConfig
	types       []string
	sections    []SetupSection
}

// New builds a Catalog from definition configs and sections. Definition
// order is preserved as the canonical type order.
func New(definitions []metaobject.DefinitionConfig, sections []SetupSection) *Catalog {
	c := &Catalog{
		definitions: make(map[string]metaobject.DefinitionConfig, len(definitions)),
		types:       make([]string, 0, len(definitions)),
		sections:    sections,
	}
	for _, def := range definitions {
		if _, dup := c.definitions[def.Type]; dup {
			continue
		}
		c.definitions[def.Type] = def
		c.types = append(c.types, def.Type)
	}
	return c
}

// Definition returns the config for a type and whether it is known.
func (c *Catalog) Definition(metaobjectType string) (metaobject.DefinitionConfig, bool) {
	def, ok := c.definitions[metaobjectType]
	return def, ok
}

// Types returns all configured types in declaration order. The returned
// slice is a copy; callers may not mutate catalog state.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

// Sections returns the setup sections in declaration order.
func (c *Catalog) Sections() []SetupSection {
	out := make([]SetupSection, len(c.sections))
	copy(out, c.sections)
	return out
}

// Len returns the number of configured types.
func (c *Catalog) Len() int {
	return len(c.types)
}

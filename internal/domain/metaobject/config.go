package metaobject

// FieldConfig describes one field of a definition the way the setup catalog
// wants it created. Required defaults to false and Description to empty when
// not set.
type FieldConfig struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Type        string `json:"type"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
}

// DefinitionConfig is a static catalog entry: the single source of truth for
// what fields a definition should have when created. Immutable, compiled into
// the program, keyed by Type.
type DefinitionConfig struct {
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Description string        `json:"description,omitempty"`
	Fields      []FieldConfig `json:"fieldDefinitions"`
}

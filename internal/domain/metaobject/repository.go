package metaobject

import "context"

// FieldInput is a field value to write on create/update.
type FieldInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreateInput is the payload for creating an entry.
type CreateInput struct {
	Type   string       `json:"type"`
	Handle string       `json:"handle,omitempty"`
	Fields []FieldInput `json:"fields"`
}

// UpdateInput is the payload for updating an entry. No version check is
// performed; concurrent updates are last-write-wins.
type UpdateInput struct {
	Fields []FieldInput `json:"fields"`
}

// Result carries the outcome of a mutation. A failed Admin API call is an
// error; a business rejection (userErrors in the response) is a Result with
// Success false and the first user-facing message in Error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CreateResult extends Result with the created entry on success.
type CreateResult struct {
	Success    bool        `json:"success"`
	Metaobject *Metaobject `json:"metaobject,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Repository is the single gateway to the store's metaobject data and the
// auxiliary reference lists. Implementations translate raw Admin GraphQL
// responses into domain values; they never leak response JSON upward.
type Repository interface {
	// GetDefinitions returns all metaobject definitions in the store.
	GetDefinitions(ctx context.Context) ([]Definition, error)

	// GetDefinitionByType returns the definition with the given type, or nil
	// when none exists. Derived by filtering GetDefinitions; the Admin API
	// has no direct lookup by type.
	GetDefinitionByType(ctx context.Context, metaobjectType string) (*Definition, error)

	// CreateDefinition creates a definition from a static catalog config.
	CreateDefinition(ctx context.Context, config DefinitionConfig) (Result, error)

	// GetByType returns up to first entries of a type. A type whose
	// definition does not exist yet yields an empty slice, not an error;
	// all other failures propagate.
	GetByType(ctx context.Context, metaobjectType string, first int) ([]Metaobject, error)

	// GetFirstByType returns the first entry of a type, or nil when none.
	GetFirstByType(ctx context.Context, metaobjectType string) (*Metaobject, error)

	Create(ctx context.Context, input CreateInput) (CreateResult, error)
	Update(ctx context.Context, id string, input UpdateInput) (Result, error)
	Delete(ctx context.Context, id string) (Result, error)

	// GetShopInfo returns store identity. Never nil; a store that returns
	// nothing yields a zero-valued Shop.
	GetShopInfo(ctx context.Context) (Shop, error)

	GetCollections(ctx context.Context) ([]Collection, error)
	GetLocations(ctx context.Context) ([]Location, error)
}

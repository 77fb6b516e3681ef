package shopify

import (
	"context"

	"github.com/tidwall/gjson"

	"shopsetup/internal/core/apperror"
	"shopsetup/internal/domain/metaobject"
)

// Repository implements metaobject.Repository on top of the Admin GraphQL
// client. It owns response translation; domain code never sees raw JSON.
type Repository struct {
	executor Executor
}

// NewRepository creates a repository bound to an Admin API executor.
func NewRepository(executor Executor) *Repository {
	return &Repository{executor: executor}
}

var _ metaobject.Repository = (*Repository)(nil)

// --- Definitions ---

// GetDefinitions returns all metaobject definitions in the store.
func (r *Repository) GetDefinitions(ctx context.Context) ([]metaobject.Definition, error) {
	result, err := r.executor.Execute(ctx, getMetaobjectDefinitions, nil)
	if err != nil {
		return nil, err
	}

	nodes := result.Get("data.metaobjectDefinitions.nodes")
	definitions := make([]metaobject.Definition, 0, len(nodes.Array()))
	nodes.ForEach(func(_, node gjson.Result) bool {
		definitions = append(definitions, parseDefinition(node))
		return true
	})
	return definitions, nil
}

// GetDefinitionByType filters GetDefinitions for the given type. The Admin
// API has no direct lookup by type, so this is O(n) over all definitions.
func (r *Repository) GetDefinitionByType(ctx context.Context, metaobjectType string) (*metaobject.Definition, error) {
	definitions, err := r.GetDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range definitions {
		if definitions[i].Type == metaobjectType {
			return &definitions[i], nil
		}
	}
	return nil, nil
}

// CreateDefinition creates a definition from a static catalog config with a
// public storefront read access policy.
func (r *Repository) CreateDefinition(ctx context.Context, config metaobject.DefinitionConfig) (metaobject.Result, error) {
	fields := make([]map[string]any, 0, len(config.Fields))
	for _, f := range config.Fields {
		var description any
		if f.Description != "" {
			description = f.Description
		}
		fields = append(fields, map[string]any{
			"name":        f.Name,
			"key":         f.Key,
			"type":        f.Type,
			"required":    f.Required,
			"description": description,
		})
	}

	result, err := r.executor.Execute(ctx, createMetaobjectDefinition, map[string]any{
		"definition": map[string]any{
			"name":             config.Name,
			"type":             config.Type,
			"fieldDefinitions": fields,
			"access":           map[string]any{"storefront": "PUBLIC_READ"},
		},
	})
	if err != nil {
		return metaobject.Result{}, err
	}

	return userErrorsResult(result.Get("data.metaobjectDefinitionCreate.userErrors")), nil
}

// --- Metaobjects ---

// GetByType returns up to first entries of a type. A TYPE_NOT_CONFIGURED
// classification from the client is absorbed into an empty slice: a type
// without a definition has no entries. Everything else propagates.
func (r *Repository) GetByType(ctx context.Context, metaobjectType string, first int) ([]metaobject.Metaobject, error) {
	if first <= 0 {
		first = 50
	}

	result, err := r.executor.Execute(ctx, getMetaobjectsByType, map[string]any{
		"type":  metaobjectType,
		"first": first,
	})
	if err != nil {
		if apperror.IsTypeNotConfigured(err) {
			return []metaobject.Metaobject{}, nil
		}
		return nil, err
	}

	nodes := result.Get("data.metaobjects.nodes")
	entries := make([]metaobject.Metaobject, 0, len(nodes.Array()))
	nodes.ForEach(func(_, node gjson.Result) bool {
		entries = append(entries, parseMetaobject(node))
		return true
	})
	return entries, nil
}

// GetFirstByType returns the first entry of a type, or nil when none.
func (r *Repository) GetFirstByType(ctx context.Context, metaobjectType string) (*metaobject.Metaobject, error) {
	entries, err := r.GetByType(ctx, metaobjectType, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Create creates an entry and returns it on success.
func (r *Repository) Create(ctx context.Context, input metaobject.CreateInput) (metaobject.CreateResult, error) {
	fields := make([]map[string]any, 0, len(input.Fields))
	for _, f := range input.Fields {
		fields = append(fields, map[string]any{"key": f.Key, "value": f.Value})
	}

	payload := map[string]any{
		"type":   input.Type,
		"fields": fields,
	}
	if input.Handle != "" {
		payload["handle"] = input.Handle
	}

	result, err := r.executor.Execute(ctx, createMetaobject, map[string]any{"metaobject": payload})
	if err != nil {
		return metaobject.CreateResult{}, err
	}

	if res := userErrorsResult(result.Get("data.metaobjectCreate.userErrors")); !res.Success {
		return metaobject.CreateResult{Success: false, Error: res.Error}, nil
	}

	created := result.Get("data.metaobjectCreate.metaobject")
	entry := parseMetaobject(created)
	return metaobject.CreateResult{Success: true, Metaobject: &entry}, nil
}

// Update replaces field values on an entry. Last-write-wins; there is no
// version check.
func (r *Repository) Update(ctx context.Context, id string, input metaobject.UpdateInput) (metaobject.Result, error) {
	fields := make([]map[string]any, 0, len(input.Fields))
	for _, f := range input.Fields {
		fields = append(fields, map[string]any{"key": f.Key, "value": f.Value})
	}

	result, err := r.executor.Execute(ctx, updateMetaobject, map[string]any{
		"id":         id,
		"metaobject": map[string]any{"fields": fields},
	})
	if err != nil {
		return metaobject.Result{}, err
	}

	return userErrorsResult(result.Get("data.metaobjectUpdate.userErrors")), nil
}

// Delete removes an entry by id.
func (r *Repository) Delete(ctx context.Context, id string) (metaobject.Result, error) {
	result, err := r.executor.Execute(ctx, deleteMetaobject, map[string]any{"id": id})
	if err != nil {
		return metaobject.Result{}, err
	}

	return userErrorsResult(result.Get("data.metaobjectDelete.userErrors")), nil
}

// --- Shop and reference lists ---

// GetShopInfo returns store identity, zero-valued when the API returns nothing.
func (r *Repository) GetShopInfo(ctx context.Context) (metaobject.Shop, error) {
	result, err := r.executor.Execute(ctx, getShopInfo, nil)
	if err != nil {
		return metaobject.Shop{}, err
	}

	shop := result.Get("data.shop")
	if !shop.Exists() {
		return metaobject.Shop{}, nil
	}
	return metaobject.Shop{
		Name:            shop.Get("name").String(),
		Email:           shop.Get("email").String(),
		MyshopifyDomain: shop.Get("myshopifyDomain").String(),
		PrimaryDomain:   shop.Get("primaryDomain.url").String(),
	}, nil
}

// GetCollections returns product collections with the nested count flattened.
func (r *Repository) GetCollections(ctx context.Context) ([]metaobject.Collection, error) {
	result, err := r.executor.Execute(ctx, getCollections, nil)
	if err != nil {
		return nil, err
	}

	nodes := result.Get("data.collections.nodes")
	collections := make([]metaobject.Collection, 0, len(nodes.Array()))
	nodes.ForEach(func(_, node gjson.Result) bool {
		collections = append(collections, metaobject.Collection{
			ID:            node.Get("id").String(),
			Title:         node.Get("title").String(),
			Handle:        node.Get("handle").String(),
			ProductsCount: int(node.Get("productsCount.count").Int()),
		})
		return true
	})
	return collections, nil
}

// GetLocations returns physical store locations.
func (r *Repository) GetLocations(ctx context.Context) ([]metaobject.Location, error) {
	result, err := r.executor.Execute(ctx, getLocations, nil)
	if err != nil {
		return nil, err
	}

	nodes := result.Get("data.locations.nodes")
	locations := make([]metaobject.Location, 0, len(nodes.Array()))
	nodes.ForEach(func(_, node gjson.Result) bool {
		var formatted []string
		node.Get("address.formatted").ForEach(func(_, line gjson.Result) bool {
			formatted = append(formatted, line.String())
			return true
		})
		locations = append(locations, metaobject.Location{
			ID:      node.Get("id").String(),
			Name:    node.Get("name").String(),
			Address: formatted,
		})
		return true
	})
	return locations, nil
}

// --- Translation helpers ---

// userErrorsResult turns a mutation's userErrors list into a Result.
// The first user-facing message wins.
func userErrorsResult(userErrors gjson.Result) metaobject.Result {
	if userErrors.Exists() && len(userErrors.Array()) > 0 {
		return metaobject.Result{
			Success: false,
			Error:   userErrors.Array()[0].Get("message").String(),
		}
	}
	return metaobject.Result{Success: true}
}

func parseDefinition(node gjson.Result) metaobject.Definition {
	def := metaobject.Definition{
		ID:   node.Get("id").String(),
		Name: node.Get("name").String(),
		Type: node.Get("type").String(),
	}
	node.Get("fieldDefinitions").ForEach(func(_, fd gjson.Result) bool {
		def.FieldDefinitions = append(def.FieldDefinitions, metaobject.FieldDefinition{
			Key:      fd.Get("key").String(),
			Name:     fd.Get("name").String(),
			Type:     fd.Get("type.name").String(),
			Required: fd.Get("required").Bool(),
		})
		return true
	})
	return def
}

func parseMetaobject(node gjson.Result) metaobject.Metaobject {
	entry := metaobject.Metaobject{
		ID:     node.Get("id").String(),
		Handle: node.Get("handle").String(),
		Type:   node.Get("type").String(),
	}
	node.Get("fields").ForEach(func(_, f gjson.Result) bool {
		field := metaobject.Field{Key: f.Get("key").String()}
		if v := f.Get("value"); v.Exists() && v.Type != gjson.Null {
			s := v.String()
			field.Value = &s
		}
		if ref := f.Get("reference"); ref.Exists() && ref.IsObject() {
			field.Reference = &metaobject.Reference{
				ID:       ref.Get("id").String(),
				Handle:   ref.Get("handle").String(),
				Title:    ref.Get("title").String(),
				ImageURL: ref.Get("image.url").String(),
			}
		}
		entry.Fields = append(entry.Fields, field)
		return true
	})
	return entry
}

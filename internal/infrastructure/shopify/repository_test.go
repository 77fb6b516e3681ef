package shopify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"shopsetup/internal/core/apperror"
	"shopsetup/internal/domain/metaobject"
)

// fakeExecutor serves canned responses and records every call.
type fakeExecutor struct {
	queries []string
	vars    []map[string]any
	respond func(query string, variables map[string]any) (gjson.Result, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, query string, variables map[string]any) (gjson.Result, error) {
	f.queries = append(f.queries, query)
	f.vars = append(f.vars, variables)
	return f.respond(query, variables)
}

func respondWith(body string) func(string, map[string]any) (gjson.Result, error) {
	return func(string, map[string]any) (gjson.Result, error) {
		return gjson.Parse(body), nil
	}
}

func TestGetDefinitions(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {
			"metaobjectDefinitions": {
				"nodes": [
					{
						"id": "gid://shopify/MetaobjectDefinition/1",
						"name": "FAQ Item",
						"type": "faq_item",
						"fieldDefinitions": [
							{"name": "Question", "key": "question", "type": {"name": "single_line_text_field"}, "required": true}
						]
					}
				]
			}
		}
	}`)}
	repo := NewRepository(exec)

	definitions, err := repo.GetDefinitions(context.Background())
	require.NoError(t, err)

	require.Len(t, definitions, 1)
	assert.Equal(t, "faq_item", definitions[0].Type)
	require.Len(t, definitions[0].FieldDefinitions, 1)
	assert.Equal(t, "single_line_text_field", definitions[0].FieldDefinitions[0].Type)
	assert.True(t, definitions[0].FieldDefinitions[0].Required)
}

func TestGetDefinitionsEmptyResponse(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{"data": {"metaobjectDefinitions": {"nodes": []}}}`)}
	repo := NewRepository(exec)

	definitions, err := repo.GetDefinitions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, definitions)
}

func TestGetDefinitionByType(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjectDefinitions": {"nodes": [
			{"id": "1", "name": "A", "type": "type_a"},
			{"id": "2", "name": "B", "type": "type_b"}
		]}}
	}`)}
	repo := NewRepository(exec)

	def, err := repo.GetDefinitionByType(context.Background(), "type_b")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "B", def.Name)

	def, err = repo.GetDefinitionByType(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestGetByTypeParsesEntries(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjects": {"nodes": [
			{
				"id": "gid://shopify/Metaobject/10",
				"handle": "banner-1",
				"type": "home_banner",
				"fields": [
					{"key": "title", "value": "Sale"},
					{"key": "subtitle", "value": null},
					{"key": "collection", "value": null, "reference": {"id": "gid://shopify/Collection/3", "title": "Shoes", "handle": "shoes"}}
				]
			}
		]}}
	}`)}
	repo := NewRepository(exec)

	entries, err := repo.GetByType(context.Background(), "home_banner", 50)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "banner-1", entry.Handle)

	title := entry.FieldValue("title")
	require.NotNil(t, title)
	assert.Equal(t, "Sale", *title)
	assert.Nil(t, entry.FieldValue("subtitle"))

	ref := entry.FieldReference("collection")
	require.NotNil(t, ref)
	assert.Equal(t, "Shoes", ref.Title)
}

func TestGetByTypeAbsorbsUnconfiguredType(t *testing.T) {
	exec := &fakeExecutor{respond: func(string, map[string]any) (gjson.Result, error) {
		return gjson.Result{}, apperror.NewTypeNotConfigured("home_banner")
	}}
	repo := NewRepository(exec)

	entries, err := repo.GetByType(context.Background(), "home_banner", 50)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetByTypePropagatesOtherFailures(t *testing.T) {
	exec := &fakeExecutor{respond: func(string, map[string]any) (gjson.Result, error) {
		return gjson.Result{}, apperror.NewUpstream("401 unauthorized", nil)
	}}
	repo := NewRepository(exec)

	_, err := repo.GetByType(context.Background(), "home_banner", 50)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUpstream, appErr.Code)
}

func TestGetFirstByType(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjects": {"nodes": [
			{"id": "1", "handle": "h1", "type": "t", "fields": []}
		]}}
	}`)}
	repo := NewRepository(exec)

	entry, err := repo.GetFirstByType(context.Background(), "t")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "h1", entry.Handle)

	require.Len(t, exec.vars, 1)
	assert.Equal(t, 1, exec.vars[0]["first"])
}

func TestCreateDefinitionPayloadDefaults(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjectDefinitionCreate": {"metaobjectDefinition": {"id": "1"}, "userErrors": []}}
	}`)}
	repo := NewRepository(exec)

	result, err := repo.CreateDefinition(context.Background(), metaobject.DefinitionConfig{
		Name: "FAQ Item",
		Type: "faq_item",
		Fields: []metaobject.FieldConfig{
			{Name: "Question", Key: "question", Type: "single_line_text_field", Required: true, Description: "The question"},
			{Name: "Order", Key: "order", Type: "number_integer"},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, exec.vars, 1)
	definition := exec.vars[0]["definition"].(map[string]any)
	assert.Equal(t, "faq_item", definition["type"])
	assert.Equal(t, map[string]any{"storefront": "PUBLIC_READ"}, definition["access"])

	fields := definition["fieldDefinitions"].([]map[string]any)
	require.Len(t, fields, 2)
	assert.Equal(t, true, fields[0]["required"])
	assert.Equal(t, "The question", fields[0]["description"])
	// Absent flags default to false / null.
	assert.Equal(t, false, fields[1]["required"])
	assert.Nil(t, fields[1]["description"])
}

func TestCreateDefinitionSurfacesUserError(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjectDefinitionCreate": {"metaobjectDefinition": null, "userErrors": [
			{"field": "type", "message": "Type has already been taken", "code": "TAKEN"}
		]}}
	}`)}
	repo := NewRepository(exec)

	result, err := repo.CreateDefinition(context.Background(), metaobject.DefinitionConfig{Type: "faq_item"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Type has already been taken", result.Error)
}

func TestCreateSurfacesUserError(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjectCreate": {"metaobject": null, "userErrors": [
			{"field": "handle", "message": "Handle already in use"}
		]}}
	}`)}
	repo := NewRepository(exec)

	result, err := repo.Create(context.Background(), metaobject.CreateInput{Type: "faq_item"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Handle already in use", result.Error)
	assert.Nil(t, result.Metaobject)
}

func TestCreateReturnsEntry(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"metaobjectCreate": {"metaobject": {"id": "gid://shopify/Metaobject/5", "handle": "x", "type": "faq_item"}, "userErrors": []}}
	}`)}
	repo := NewRepository(exec)

	result, err := repo.Create(context.Background(), metaobject.CreateInput{
		Type:   "faq_item",
		Handle: "x",
		Fields: []metaobject.FieldInput{{Key: "question", Value: "Q?"}},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Metaobject)
	assert.Equal(t, "gid://shopify/Metaobject/5", result.Metaobject.ID)
}

func TestUpdateAndDelete(t *testing.T) {
	exec := &fakeExecutor{respond: func(query string, _ map[string]any) (gjson.Result, error) {
		if query == updateMetaobject {
			return gjson.Parse(`{"data": {"metaobjectUpdate": {"userErrors": []}}}`), nil
		}
		return gjson.Parse(`{"data": {"metaobjectDelete": {"deletedId": "gid://shopify/Metaobject/9", "userErrors": []}}}`), nil
	}}
	repo := NewRepository(exec)

	updated, err := repo.Update(context.Background(), "gid://shopify/Metaobject/9", metaobject.UpdateInput{
		Fields: []metaobject.FieldInput{{Key: "title", Value: "New"}},
	})
	require.NoError(t, err)
	assert.True(t, updated.Success)

	deleted, err := repo.Delete(context.Background(), "gid://shopify/Metaobject/9")
	require.NoError(t, err)
	assert.True(t, deleted.Success)
}

func TestGetShopInfoZeroValueWhenMissing(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{"data": {}}`)}
	repo := NewRepository(exec)

	shop, err := repo.GetShopInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, metaobject.Shop{}, shop)
}

func TestGetShopInfo(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"shop": {
			"name": "Test Store",
			"email": "owner@test.com",
			"myshopifyDomain": "test.myshopify.com",
			"primaryDomain": {"url": "https://test.com"}
		}}
	}`)}
	repo := NewRepository(exec)

	shop, err := repo.GetShopInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, metaobject.Shop{
		Name:            "Test Store",
		Email:           "owner@test.com",
		MyshopifyDomain: "test.myshopify.com",
		PrimaryDomain:   "https://test.com",
	}, shop)
}

func TestGetCollectionsFlattensCount(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"collections": {"nodes": [
			{"id": "gid://shopify/Collection/1", "title": "Shoes", "handle": "shoes", "productsCount": {"count": 12}},
			{"id": "gid://shopify/Collection/2", "title": "Hats", "handle": "hats"}
		]}}
	}`)}
	repo := NewRepository(exec)

	collections, err := repo.GetCollections(context.Background())
	require.NoError(t, err)

	require.Len(t, collections, 2)
	assert.Equal(t, 12, collections[0].ProductsCount)
	assert.Equal(t, 0, collections[1].ProductsCount)
}

func TestGetLocations(t *testing.T) {
	exec := &fakeExecutor{respond: respondWith(`{
		"data": {"locations": {"nodes": [
			{"id": "gid://shopify/Location/1", "name": "Main", "address": {"formatted": ["123 Main St", "Springfield"]}}
		]}}
	}`)}
	repo := NewRepository(exec)

	locations, err := repo.GetLocations(context.Background())
	require.NoError(t, err)

	require.Len(t, locations, 1)
	assert.Equal(t, "Main", locations[0].Name)
	assert.Equal(t, []string{"123 Main St", "Springfield"}, locations[0].Address)
}

package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
)

func TestCreateDefinitionUnknownTypeIsLocalFailure(t *testing.T) {
	repo := newFakeRepo()
	cat := catalog.New(configsFor("known"), nil)
	svc := NewDefinitionService(repo, cat)

	result, err := svc.Create(context.Background(), "unknown_type")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Definition not found for type: unknown_type", result.Error)

	// Local validation never reaches the Admin API.
	assert.Empty(t, repo.createDefinitionCalls)
}

func TestCreateDefinitionSuccess(t *testing.T) {
	repo := newFakeRepo()
	cat := catalog.New(configsFor("faq_item"), nil)
	svc := NewDefinitionService(repo, cat)

	result, err := svc.Create(context.Background(), "faq_item")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, []string{"faq_item"}, repo.createDefinitionCalls)
}

func TestCreateDefinitionAlreadyTakenIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	repo.createDefinitionFn = func(metaobject.DefinitionConfig) (metaobject.Result, error) {
		return metaobject.Result{Success: false, Error: "Type has already been taken"}, nil
	}
	cat := catalog.New(configsFor("faq_item"), nil)
	svc := NewDefinitionService(repo, cat)

	result, err := svc.Create(context.Background(), "faq_item")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.AlreadyExists)
	assert.Empty(t, result.Error)
}

func TestCreateDefinitionBusinessRejectionPassesThrough(t *testing.T) {
	repo := newFakeRepo()
	repo.createDefinitionFn = func(metaobject.DefinitionConfig) (metaobject.Result, error) {
		return metaobject.Result{Success: false, Error: "Field key is invalid"}, nil
	}
	cat := catalog.New(configsFor("faq_item"), nil)
	svc := NewDefinitionService(repo, cat)

	result, err := svc.Create(context.Background(), "faq_item")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Field key is invalid", result.Error)
}

func TestCreateDefinitionTransportFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.createDefinitionFn = func(metaobject.DefinitionConfig) (metaobject.Result, error) {
		return metaobject.Result{}, errors.New("connection reset")
	}
	cat := catalog.New(configsFor("faq_item"), nil)
	svc := NewDefinitionService(repo, cat)

	_, err := svc.Create(context.Background(), "faq_item")
	require.Error(t, err)
}

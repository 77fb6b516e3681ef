package setup

import (
	"context"
	"sync"

	"shopsetup/internal/domain/metaobject"
)

// fakeRepo is a hand-written metaobject.Repository for use-case tests.
// It records calls and serves canned data; per-type errors simulate
// upstream failures.
type fakeRepo struct {
	mu sync.Mutex

	definitions []metaobject.Definition
	entries     map[string][]metaobject.Metaobject
	shop        metaobject.Shop

	shopErr        error
	definitionsErr error
	byTypeErr      map[string]error

	createDefinitionFn func(config metaobject.DefinitionConfig) (metaobject.Result, error)
	createFn           func(input metaobject.CreateInput) (metaobject.CreateResult, error)

	getDefinitionsCalls   int
	getByTypeCalls        []string
	createDefinitionCalls []string
	createCalls           []metaobject.CreateInput
}

var _ metaobject.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		entries:   map[string][]metaobject.Metaobject{},
		byTypeErr: map[string]error{},
	}
}

func (f *fakeRepo) addDefinition(metaobjectType string) {
	f.definitions = append(f.definitions, metaobject.Definition{
		ID:   "gid://shopify/MetaobjectDefinition/" + metaobjectType,
		Name: metaobjectType,
		Type: metaobjectType,
	})
}

func (f *fakeRepo) addEntry(metaobjectType string) {
	f.entries[metaobjectType] = append(f.entries[metaobjectType], metaobject.Metaobject{
		ID:     "gid://shopify/Metaobject/" + metaobjectType,
		Handle: metaobjectType + "-1",
		Type:   metaobjectType,
	})
}

func (f *fakeRepo) GetDefinitions(ctx context.Context) ([]metaobject.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getDefinitionsCalls++
	if f.definitionsErr != nil {
		return nil, f.definitionsErr
	}
	return f.definitions, nil
}

func (f *fakeRepo) GetDefinitionByType(ctx context.Context, metaobjectType string) (*metaobject.Definition, error) {
	definitions, err := f.GetDefinitions(ctx)
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

func (f *fakeRepo) CreateDefinition(ctx context.Context, config metaobject.DefinitionConfig) (metaobject.Result, error) {
	f.mu.Lock()
	f.createDefinitionCalls = append(f.createDefinitionCalls, config.Type)
	fn := f.createDefinitionFn
	f.mu.Unlock()
	if fn != nil {
		return fn(config)
	}
	return metaobject.Result{Success: true}, nil
}

func (f *fakeRepo) GetByType(ctx context.Context, metaobjectType string, first int) ([]metaobject.Metaobject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getByTypeCalls = append(f.getByTypeCalls, metaobjectType)
	if err := f.byTypeErr[metaobjectType]; err != nil {
		return nil, err
	}
	entries := f.entries[metaobjectType]
	if first > 0 && len(entries) > first {
		entries = entries[:first]
	}
	return entries, nil
}

func (f *fakeRepo) GetFirstByType(ctx context.Context, metaobjectType string) (*metaobject.Metaobject, error) {
	entries, err := f.GetByType(ctx, metaobjectType, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (f *fakeRepo) Create(ctx context.Context, input metaobject.CreateInput) (metaobject.CreateResult, error) {
	f.mu.Lock()
	f.createCalls = append(f.createCalls, input)
	fn := f.createFn
	f.mu.Unlock()
	if fn != nil {
		return fn(input)
	}
	created := metaobject.Metaobject{ID: "gid://shopify/Metaobject/new", Handle: input.Handle, Type: input.Type}
	return metaobject.CreateResult{Success: true, Metaobject: &created}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, input metaobject.UpdateInput) (metaobject.Result, error) {
	return metaobject.Result{Success: true}, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (metaobject.Result, error) {
	return metaobject.Result{Success: true}, nil
}

func (f *fakeRepo) GetShopInfo(ctx context.Context) (metaobject.Shop, error) {
	if f.shopErr != nil {
		return metaobject.Shop{}, f.shopErr
	}
	return f.shop, nil
}

func (f *fakeRepo) GetCollections(ctx context.Context) ([]metaobject.Collection, error) {
	return nil, nil
}

func (f *fakeRepo) GetLocations(ctx context.Context) ([]metaobject.Location, error) {
	return nil, nil
}

package setup

import (
	"context"

	"shopsetup/internal/domain/metaobject"
)

// EntryService mutates metaobject entries. Pass-throughs by design: field
// lists and types are entirely the caller's responsibility, and updates are
// last-write-wins.
type EntryService struct {
	repo metaobject.Repository
}

// NewEntryService creates an EntryService.
func NewEntryService(repo metaobject.Repository) *EntryService {
	return &EntryService{repo: repo}
}

// Create creates an entry.
func (s *EntryService) Create(ctx context.Context, input metaobject.CreateInput) (metaobject.CreateResult, error) {
	return s.repo.Create(ctx, input)
}

// Update replaces field values on an entry.
func (s *EntryService) Update(ctx context.Context, id string, input metaobject.UpdateInput) (metaobject.Result, error) {
	return s.repo.Update(ctx, id, input)
}

// Delete removes an entry.
func (s *EntryService) Delete(ctx context.Context, id string) (metaobject.Result, error) {
	return s.repo.Delete(ctx, id)
}

package setup

import (
	"context"

	"shopsetup/internal/domain/metaobject"
)

// ReferenceService exposes the auxiliary reference lists so the use-case
// layer stays the sole caller-facing surface.
type ReferenceService struct {
	repo metaobject.Repository
}

// NewReferenceService creates a ReferenceService.
func NewReferenceService(repo metaobject.Repository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

// Collections lists product collections for reference pickers.
func (s *ReferenceService) Collections(ctx context.Context) ([]metaobject.Collection, error) {
	return s.repo.GetCollections(ctx)
}

// Locations lists physical store locations.
func (s *ReferenceService) Locations(ctx context.Context) ([]metaobject.Location, error) {
	return s.repo.GetLocations(ctx)
}

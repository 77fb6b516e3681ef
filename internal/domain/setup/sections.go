package setup

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
)

// sectionEntryLimit caps how many entries a section view loads per type.
const sectionEntryLimit = 50

// SectionData is everything a section screen needs for one content type.
// Definition is the static catalog config and is nil for unknown types;
// the caller decides what an unknown type means.
type SectionData struct {
	DefinitionExists bool                         `json:"definitionExists"`
	Entries          []metaobject.Metaobject      `json:"entries"`
	Definition       *metaobject.DefinitionConfig `json:"definition,omitempty"`
}

// SectionService loads per-type section data, single or batched.
type SectionService struct {
	repo        metaobject.Repository
	catalog     *catalog.Catalog
	fanOutLimit int
}

// NewSectionService creates a SectionService.
func NewSectionService(repo metaobject.Repository, cat *catalog.Catalog, fanOutLimit int) *SectionService {
	if fanOutLimit < 1 {
		fanOutLimit = DefaultFanOutLimit
	}
	return &SectionService{
		repo:        repo,
		catalog:     cat,
		fanOutLimit: fanOutLimit,
	}
}

// Get loads section data for a single type: definition existence first, then
// up to 50 entries when the definition exists.
func (s *SectionService) Get(ctx context.Context, metaobjectType string) (*SectionData, error) {
	definitions, err := s.repo.GetDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	exists := false
	for _, d := range definitions {
		if d.Type == metaobjectType {
			exists = true
			break
		}
	}

	entries := []metaobject.Metaobject{}
	if exists {
		entries, err = s.repo.GetByType(ctx, metaobjectType, sectionEntryLimit)
		if err != nil {
			return nil, err
		}
	}

	return &SectionData{
		DefinitionExists: exists,
		Entries:          entries,
		Definition:       s.definitionConfig(metaobjectType),
	}, nil
}

// GetMultiple resolves section data for several types off a single
// definition-list fetch. Any failing entry load aborts the whole batch,
// same policy as the dashboard.
func (s *SectionService) GetMultiple(ctx context.Context, types []string) (map[string]SectionData, error) {
	definitions, err := s.repo.GetDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	existingTypes := make(map[string]bool, len(definitions))
	for _, d := range definitions {
		existingTypes[d.Type] = true
	}

	var mu sync.Mutex
	results := make(map[string]SectionData, len(types))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOutLimit)
	for _, t := range types {
		g.Go(func() error {
			entries := []metaobject.Metaobject{}
			if existingTypes[t] {
				var err error
				entries, err = s.repo.GetByType(gctx, t, sectionEntryLimit)
				if err != nil {
					return err
				}
			}

			mu.Lock()
			results[t] = SectionData{
				DefinitionExists: existingTypes[t],
				Entries:          entries,
				Definition:       s.definitionConfig(t),
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *SectionService) definitionConfig(metaobjectType string) *metaobject.DefinitionConfig {
	if def, ok := s.catalog.Definition(metaobjectType); ok {
		return &def
	}
	return nil
}

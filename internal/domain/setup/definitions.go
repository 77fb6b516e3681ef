package setup

import (
	"context"
	"fmt"
	"strings"

	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
	"shopsetup/pkg/logger"
)

// DefinitionResult is the outcome of creating a definition. AlreadyExists is
// set when the store already has the definition; that re-create is a no-op,
// not a failure.
type DefinitionResult struct {
	Success       bool   `json:"success"`
	AlreadyExists bool   `json:"alreadyExists,omitempty"`
	Error         string `json:"error,omitempty"`
}

// DefinitionService creates metaobject definitions from the static catalog.
type DefinitionService struct {
	repo    metaobject.Repository
	catalog *catalog.Catalog
}

// NewDefinitionService creates a DefinitionService.
func NewDefinitionService(repo metaobject.Repository, cat *catalog.Catalog) *DefinitionService {
	return &DefinitionService{repo: repo, catalog: cat}
}

// Create creates the definition for a catalog type. An unknown type is a
// local validation failure and never reaches the Admin API. The platform's
// "already been taken" rejection is classified as AlreadyExists rather than
// surfaced as an error.
func (s *DefinitionService) Create(ctx context.Context, metaobjectType string) (DefinitionResult, error) {
	config, ok := s.catalog.Definition(metaobjectType)
	if !ok {
		return DefinitionResult{
			Success: false,
			Error:   fmt.Sprintf("Definition not found for type: %s", metaobjectType),
		}, nil
	}

	result, err := s.repo.CreateDefinition(ctx, config)
	if err != nil {
		return DefinitionResult{}, err
	}

	if !result.Success {
		if strings.Contains(result.Error, "already been taken") {
			logger.Debug(ctx, "definition already exists", "type", metaobjectType)
			return DefinitionResult{Success: true, AlreadyExists: true}, nil
		}
		return DefinitionResult{Success: false, Error: result.Error}, nil
	}

	logger.Info(ctx, "definition created", "type", metaobjectType)
	return DefinitionResult{Success: true}, nil
}

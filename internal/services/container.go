// Package services wires the repository and the static catalog into
// concrete use-case instances.
package services

import (
	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
	"shopsetup/internal/domain/setup"
	"shopsetup/internal/infrastructure/shopify"
)

// Config tunes container construction.
type Config struct {
	// FanOutLimit caps concurrent per-type reads in batched use cases.
	// Zero means setup.DefaultFanOutLimit.
	FanOutLimit int

	// Catalog overrides the built-in catalog. Nil means catalog.Default().
	Catalog *catalog.Catalog
}

// Container holds one repository and every use case bound to it.
type Container struct {
	Repository metaobject.Repository
	Catalog    *catalog.Catalog

	Dashboard   *setup.DashboardService
	Sections    *setup.SectionService
	Definitions *setup.DefinitionService
	Entries     *setup.EntryService
	Seed        *setup.SeedService
	Reference   *setup.ReferenceService
}

// New builds a container from an Admin API executor.
func New(executor shopify.Executor, cfg Config) *Container {
	repo := shopify.NewRepository(executor)
	return NewWithRepository(repo, cfg)
}

// NewWithRepository builds a container from an existing repository.
// Useful for tests that substitute a fake.
func NewWithRepository(repo metaobject.Repository, cfg Config) *Container {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	definitions := setup.NewDefinitionService(repo, cat)
	entries := setup.NewEntryService(repo)

	return &Container{
		Repository:  repo,
		Catalog:     cat,
		Dashboard:   setup.NewDashboardService(repo, cat, cfg.FanOutLimit),
		Sections:    setup.NewSectionService(repo, cat, cfg.FanOutLimit),
		Definitions: definitions,
		Entries:     entries,
		Seed:        setup.NewSeedService(definitions, entries, cat),
		Reference:   setup.NewReferenceService(repo),
	}
}

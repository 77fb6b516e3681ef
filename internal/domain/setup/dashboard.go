// Package setup provides the business operations of the configuration
// wizard: dashboard aggregation, section data, definition creation, entry
// mutations and sample seeding.
package setup

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
	"shopsetup/pkg/logger"
)

var tracer = otel.Tracer("shopsetup/setup")

// AppConfigType is the singleton content type carrying global app settings.
// Singleton by convention: nothing prevents a second entry.
const AppConfigType = "app_config"

// DefaultFanOutLimit bounds the number of concurrent per-type entry probes
// during dashboard aggregation.
const DefaultFanOutLimit = 8

// MetaobjectStatus is the reconciled state of one content type.
type MetaobjectStatus struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Exists  bool   `json:"exists"`
	HasData bool   `json:"hasData"`
}

// SectionStatus is the derived completion state of one setup section.
type SectionStatus struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Route       string             `json:"route"`
	Icon        string             `json:"icon"`
	Metaobjects []MetaobjectStatus `json:"metaobjects"`
	IsComplete  bool               `json:"isComplete"`
	Progress    int                `json:"progress"`
}

// ValidationStats are global completion counts over the whole catalog.
// Invariant: Complete + Empty + Missing == Total.
type ValidationStats struct {
	Complete   int `json:"complete"`
	Empty      int `json:"empty"`
	Missing    int `json:"missing"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// DashboardData is the aggregate the merchant dashboard renders.
type DashboardData struct {
	Shop                      metaobject.Shop        `json:"shop"`
	SetupStatus               []SectionStatus        `json:"setupStatus"`
	AppConfig                 *metaobject.Metaobject `json:"appConfig"`
	AppConfigDefinitionExists bool                   `json:"appConfigDefinitionExists"`
	Stats                     ValidationStats        `json:"stats"`
}

// DashboardService computes the dashboard aggregate: a fan-out of reads
// across the Admin API reconciled into per-section and global completion.
type DashboardService struct {
	repo        metaobject.Repository
	catalog     *catalog.Catalog
	fanOutLimit int
}

// NewDashboardService creates a DashboardService. fanOutLimit caps the
// number of in-flight entry probes; values below 1 fall back to
// DefaultFanOutLimit.
func NewDashboardService(repo metaobject.Repository, cat *catalog.Catalog, fanOutLimit int) *DashboardService {
	if fanOutLimit < 1 {
		fanOutLimit = DefaultFanOutLimit
	}
	return &DashboardService{
		repo:        repo,
		catalog:     cat,
		fanOutLimit: fanOutLimit,
	}
}

// Execute recomputes the full dashboard from fresh reads. Nothing is cached;
// every call fans out again.
//
// Any failed read aborts the whole aggregate: a partial dashboard is worse
// than an error the merchant can retry.
func (s *DashboardService) Execute(ctx context.Context) (*DashboardData, error) {
	ctx, span := tracer.Start(ctx, "dashboard.execute")
	defer span.End()

	// Join point: shop identity and the definition list are independent
	// reads, both required before any entry probe can start.
	var (
		shop        metaobject.Shop
		definitions []metaobject.Definition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shop, err = s.repo.GetShopInfo(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		definitions, err = s.repo.GetDefinitions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	existingTypes := make(map[string]bool, len(definitions))
	for _, d := range definitions {
		existingTypes[d.Type] = true
	}

	// Types without a definition are skipped outright: probing them would be
	// a certain not-found. Order follows catalog declaration order.
	allTypes := s.catalog.Types()
	typesToCheck := make([]string, 0, len(allTypes))
	for _, t := range allTypes {
		if existingTypes[t] {
			typesToCheck = append(typesToCheck, t)
		}
	}

	span.SetAttributes(
		attribute.Int("catalog.types", len(allTypes)),
		attribute.Int("catalog.defined", len(typesToCheck)),
	)

	// Bounded fan-out: one single-entry probe per defined type. Results land
	// by index, so output order is deterministic regardless of arrival order.
	type probe struct {
		count int
		first *metaobject.Metaobject
	}
	probes := make([]probe, len(typesToCheck))

	pg, pctx := errgroup.WithContext(ctx)
	pg.SetLimit(s.fanOutLimit)
	for i, t := range typesToCheck {
		pg.Go(func() error {
			entries, err := s.repo.GetByType(pctx, t, 1)
			if err != nil {
				return err
			}
			p := probe{count: len(entries)}
			if len(entries) > 0 {
				p.first = &entries[0]
			}
			probes[i] = p
			return nil
		})
	}
	if err := pg.Wait(); err != nil {
		return nil, err
	}

	entryCounts := make(map[string]int, len(typesToCheck))
	var appConfig *metaobject.Metaobject
	for i, t := range typesToCheck {
		entryCounts[t] = probes[i].count
		if t == AppConfigType && probes[i].first != nil {
			appConfig = probes[i].first
		}
	}

	setupStatus := make([]SectionStatus, 0, len(s.catalog.Sections()))
	for _, section := range s.catalog.Sections() {
		setupStatus = append(setupStatus, s.sectionStatus(section, existingTypes, entryCounts))
	}

	stats := computeStats(allTypes, existingTypes, entryCounts)

	logger.Debug(ctx, "dashboard computed",
		"complete", stats.Complete,
		"empty", stats.Empty,
		"missing", stats.Missing,
		"percentage", stats.Percentage,
	)

	return &DashboardData{
		Shop:                      shop,
		SetupStatus:               setupStatus,
		AppConfig:                 appConfig,
		AppConfigDefinitionExists: existingTypes[AppConfigType],
		Stats:                     stats,
	}, nil
}

// sectionStatus maps a section's member types against the existing-types set
// and entry counts. Member order follows the section's declared list.
func (s *DashboardService) sectionStatus(
	section catalog.SetupSection,
	existingTypes map[string]bool,
	entryCounts map[string]int,
) SectionStatus {
	statuses := make([]MetaobjectStatus, 0, len(section.Metaobjects))
	completed := 0
	for _, t := range section.Metaobjects {
		name := t
		if def, ok := s.catalog.Definition(t); ok {
			name = def.Name
		}
		hasData := entryCounts[t] > 0
		if hasData {
			completed++
		}
		statuses = append(statuses, MetaobjectStatus{
			Type:    t,
			Name:    name,
			Exists:  existingTypes[t],
			HasData: hasData,
		})
	}

	progress := 0
	isComplete := false
	if len(statuses) > 0 {
		progress = int(math.Round(float64(completed) / float64(len(statuses)) * 100))
		isComplete = completed == len(statuses)
	}

	return SectionStatus{
		ID:          section.ID,
		Title:       section.Title,
		Description: section.Description,
		Route:       section.Route,
		Icon:        section.Icon,
		Metaobjects: statuses,
		IsComplete:  isComplete,
		Progress:    progress,
	}
}

// computeStats scores the whole catalog: a type with data counts full, a
// defined-but-empty type counts half, a missing definition counts zero.
// An empty catalog is 0%, never a division by zero.
func computeStats(allTypes []string, existingTypes map[string]bool, entryCounts map[string]int) ValidationStats {
	stats := ValidationStats{Total: len(allTypes)}
	for _, t := range allTypes {
		switch {
		case entryCounts[t] > 0:
			stats.Complete++
		case existingTypes[t]:
			stats.Empty++
		default:
			stats.Missing++
		}
	}

	if stats.Total > 0 {
		score := float64(stats.Complete) + 0.5*float64(stats.Empty)
		stats.Percentage = int(math.Round(score / float64(stats.Total) * 100))
	}
	return stats
}

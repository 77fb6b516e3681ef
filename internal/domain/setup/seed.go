package setup

import (
	"context"

	"shopsetup/internal/domain/catalog"
	"shopsetup/internal/domain/metaobject"
	"shopsetup/pkg/logger"
)

// SeedResult reports a seeding run. Batches are best-effort: entries created
// before a failure stay in place, Created says how many landed.
type SeedResult struct {
	Success bool   `json:"success"`
	Created int    `json:"created"`
	Error   string `json:"error,omitempty"`
}

// SeedService populates default entries for the out-of-the-box setup flows.
type SeedService struct {
	definitions *DefinitionService
	entries     *EntryService
	catalog     *catalog.Catalog
}

// NewSeedService creates a SeedService.
func NewSeedService(definitions *DefinitionService, entries *EntryService, cat *catalog.Catalog) *SeedService {
	return &SeedService{definitions: definitions, entries: entries, catalog: cat}
}

var appConfigDefaults = map[string]string{
	"app_name":            "My App",
	"primary_color":       "#6366f1",
	"secondary_color":     "#8b5cf6",
	"min_version_ios":     "1.0.0",
	"min_version_android": "1.0.0",
	"maintenance_mode":    "false",
}

// AppConfig ensures the app_config definition exists and creates the
// singleton entry with default values for every configured field.
func (s *SeedService) AppConfig(ctx context.Context) (SeedResult, error) {
	defResult, err := s.definitions.Create(ctx, AppConfigType)
	if err != nil {
		return SeedResult{}, err
	}
	if !defResult.Success {
		return SeedResult{Success: false, Error: defResult.Error}, nil
	}

	config, _ := s.catalog.Definition(AppConfigType)
	fields := make([]metaobject.FieldInput, 0, len(config.Fields))
	for _, f := range config.Fields {
		fields = append(fields, metaobject.FieldInput{
			Key:   f.Key,
			Value: appConfigDefaults[f.Key],
		})
	}

	created, err := s.entries.Create(ctx, metaobject.CreateInput{
		Type:   AppConfigType,
		Handle: "app-config",
		Fields: fields,
	})
	if err != nil {
		return SeedResult{}, err
	}
	if !created.Success {
		return SeedResult{Success: false, Error: created.Error}, nil
	}

	logger.Info(ctx, "app config seeded")
	return SeedResult{Success: true, Created: 1}, nil
}

var sampleFAQs = []map[string]string{
	{
		"question": "What is the shipping time?",
		"answer":   "Standard shipping takes 3-5 business days.",
		"category": "shipping",
		"order":    "1",
		"active":   "true",
	},
	{
		"question": "How can I return a product?",
		"answer":   "You have 30 days to return any product.",
		"category": "returns",
		"order":    "2",
		"active":   "true",
	},
	{
		"question": "Which payment methods do you accept?",
		"answer":   "We accept cards, PayPal, Apple Pay and Google Pay.",
		"category": "payment",
		"order":    "3",
		"active":   "true",
	},
}

// SampleFAQs creates a handful of example FAQ entries. At-least-effort: a
// mid-batch failure keeps earlier entries, no rollback.
func (s *SeedService) SampleFAQs(ctx context.Context) (SeedResult, error) {
	created := 0
	for _, faq := range sampleFAQs {
		fields := make([]metaobject.FieldInput, 0, len(faq))
		for _, key := range []string{"question", "answer", "category", "order", "active"} {
			fields = append(fields, metaobject.FieldInput{Key: key, Value: faq[key]})
		}

		result, err := s.entries.Create(ctx, metaobject.CreateInput{
			Type:   "faq_item",
			Fields: fields,
		})
		if err != nil {
			return SeedResult{Success: false, Created: created, Error: err.Error()}, nil
		}
		if result.Success {
			created++
		}
	}

	logger.Info(ctx, "sample FAQs seeded", "created", created)
	return SeedResult{Success: true, Created: created}, nil
}

// ContactInfo creates a contact info template entry with placeholder values.
func (s *SeedService) ContactInfo(ctx context.Context) (SeedResult, error) {
	result, err := s.entries.Create(ctx, metaobject.CreateInput{
		Type:   "contact_info",
		Handle: "main-contact",
		Fields: []metaobject.FieldInput{
			{Key: "phone", Value: "+1 555 000 0000"},
			{Key: "email", Value: "info@yourstore.com"},
			{Key: "whatsapp", Value: "+1 555 000 0001"},
			{Key: "address", Value: "123 Main Street\nSpringfield"},
			{Key: "working_hours", Value: "Monday to Friday: 9:00 - 20:00"},
		},
	})
	if err != nil {
		return SeedResult{}, err
	}
	if !result.Success {
		return SeedResult{Success: false, Error: result.Error}, nil
	}

	logger.Info(ctx, "contact info seeded")
	return SeedResult{Success: true, Created: 1}, nil
}

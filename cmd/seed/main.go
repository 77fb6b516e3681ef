// Package main provides a CLI tool for bootstrapping a store: it creates
// every catalog definition and populates the default entries.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopsetup/internal/infrastructure/shopify"
	"shopsetup/internal/services"
	"shopsetup/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	shopDomain := os.Getenv("SHOPIFY_SHOP_DOMAIN")
	accessToken := os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if shopDomain == "" || accessToken == "" {
		log.Fatal("SHOPIFY_SHOP_DOMAIN and SHOPIFY_ACCESS_TOKEN environment variables are required")
	}

	client, err := shopify.NewClient(shopify.ClientConfig{
		ShopDomain:  shopDomain,
		AccessToken: accessToken,
		APIVersion:  os.Getenv("SHOPIFY_API_VERSION"),
	})
	if err != nil {
		log.Fatalw("failed to create admin API client", "error", err)
	}

	container := services.New(client, services.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Definitions first; entries depend on them.
	created, existing := 0, 0
	for _, metaobjectType := range container.Catalog.Types() {
		result, err := container.Definitions.Create(ctx, metaobjectType)
		if err != nil {
			log.Fatalw("failed to create definition", "type", metaobjectType, "error", err)
		}
		if !result.Success {
			log.Fatalw("definition rejected", "type", metaobjectType, "reason", result.Error)
		}
		if result.AlreadyExists {
			existing++
		} else {
			created++
			log.Infow("definition created", "type", metaobjectType)
		}
	}
	log.Infow("definitions done", "created", created, "already_existing", existing)

	// Default entries, best-effort.
	if result, err := container.Seed.AppConfig(ctx); err != nil {
		log.Fatalw("failed to seed app config", "error", err)
	} else if !result.Success {
		log.Warnw("app config seeding rejected", "reason", result.Error)
	}

	if result, err := container.Seed.SampleFAQs(ctx); err != nil {
		log.Fatalw("failed to seed sample FAQs", "error", err)
	} else {
		log.Infow("sample FAQs seeded", "created", result.Created)
	}

	if result, err := container.Seed.ContactInfo(ctx); err != nil {
		log.Fatalw("failed to seed contact info", "error", err)
	} else if !result.Success {
		log.Warnw("contact info seeding rejected", "reason", result.Error)
	}

	log.Info("store bootstrap complete")
}

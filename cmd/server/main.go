// Package main is the entry point for the setup service API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "shopsetup/internal/infrastructure/http/v1"
	"shopsetup/internal/infrastructure/shopify"
	"shopsetup/internal/services"
	"shopsetup/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting setup service")

	// --- Admin API client ---
	shopDomain := mustEnv("SHOPIFY_SHOP_DOMAIN")
	client, err := shopify.NewClient(shopify.ClientConfig{
		ShopDomain:  shopDomain,
		AccessToken: mustEnv("SHOPIFY_ACCESS_TOKEN"),
		APIVersion:  getEnv("SHOPIFY_API_VERSION", "2024-10"),
		Timeout:     getEnvDuration("SHOPIFY_TIMEOUT", shopify.DefaultTimeout),
	})
	if err != nil {
		log.Fatalw("failed to create admin API client", "error", err)
	}

	// --- Service container ---
	container := services.New(client, services.Config{
		FanOutLimit: getEnvInt("FANOUT_LIMIT", 0),
	})
	log.Infow("service container initialized", "catalog_types", container.Catalog.Len())

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Container:  container,
		Logger:     log,
		ShopDomain: shopDomain,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "shop", shopDomain)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

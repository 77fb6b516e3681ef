// Package v1 wires the HTTP API surface of the setup service.
package v1

import (
	"github.com/gin-gonic/gin"

	"shopsetup/internal/infrastructure/http/v1/handlers"
	"shopsetup/internal/infrastructure/http/v1/middleware"
	"shopsetup/internal/services"
	"shopsetup/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Container  *services.Container
	Logger     *logger.Logger
	ShopDomain string
}

// NewRouter builds the gin engine with all v1 routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Trace(cfg.ShopDomain))
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()
	dashboard := handlers.NewDashboardHandler(base, cfg.Container.Dashboard)
	sections := handlers.NewSectionHandler(base, cfg.Container.Sections)
	definitions := handlers.NewDefinitionHandler(base, cfg.Container.Definitions)
	metaobjects := handlers.NewMetaobjectHandler(base, cfg.Container.Entries)
	seed := handlers.NewSeedHandler(base, cfg.Container.Seed)
	reference := handlers.NewReferenceHandler(base, cfg.Container.Reference)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", dashboard.Get)

		api.GET("/sections", sections.GetMultiple)
		api.GET("/sections/:type", sections.Get)

		api.POST("/definitions/:type", definitions.Create)

		api.POST("/metaobjects", metaobjects.Create)
		api.PUT("/metaobjects/*id", metaobjects.Update)
		api.DELETE("/metaobjects/*id", metaobjects.Delete)

		api.POST("/seed/:kind", seed.Run)

		api.GET("/collections", reference.Collections)
		api.GET("/locations", reference.Locations)
	}

	return router
}

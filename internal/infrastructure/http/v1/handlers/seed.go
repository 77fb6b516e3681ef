package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/core/apperror"
	"shopsetup/internal/domain/setup"
)

// SeedHandler triggers default-entry seeding flows.
type SeedHandler struct {
	*BaseHandler
	seed *setup.SeedService
}

// NewSeedHandler creates a seed handler.
func NewSeedHandler(base *BaseHandler, seed *setup.SeedService) *SeedHandler {
	return &SeedHandler{BaseHandler: base, seed: seed}
}

// Run handles POST /seed/:kind for app_config, sample_faqs and contact_info.
func (h *SeedHandler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result setup.SeedResult
		err    error
	)
	switch kind := c.Param("kind"); kind {
	case "app_config":
		result, err = h.seed.AppConfig(ctx)
	case "sample_faqs":
		result, err = h.seed.SampleFAQs(ctx)
	case "contact_info":
		result, err = h.seed.ContactInfo(ctx)
	default:
		h.Error(c, apperror.NewValidation("unknown seed kind").WithDetail("kind", kind))
		return
	}

	if err != nil {
		h.Error(c, err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

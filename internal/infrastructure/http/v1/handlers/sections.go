package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/core/apperror"
	"shopsetup/internal/domain/setup"
)

// SectionHandler serves per-type section data.
type SectionHandler struct {
	*BaseHandler
	sections *setup.SectionService
}

// NewSectionHandler creates a section handler.
func NewSectionHandler(base *BaseHandler, sections *setup.SectionService) *SectionHandler {
	return &SectionHandler{BaseHandler: base, sections: sections}
}

// Get handles GET /sections/:type.
func (h *SectionHandler) Get(c *gin.Context) {
	data, err := h.sections.Get(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetMultiple handles GET /sections?types=a,b,c.
func (h *SectionHandler) GetMultiple(c *gin.Context) {
	raw := c.Query("types")
	if raw == "" {
		h.Error(c, apperror.NewValidation("types query parameter is required"))
		return
	}

	types := strings.Split(raw, ",")
	data, err := h.sections.GetMultiple(c.Request.Context(), types)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/domain/setup"
)

// ReferenceHandler serves the auxiliary reference lists.
type ReferenceHandler struct {
	*BaseHandler
	reference *setup.ReferenceService
}

// NewReferenceHandler creates a reference handler.
func NewReferenceHandler(base *BaseHandler, reference *setup.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{BaseHandler: base, reference: reference}
}

// Collections handles GET /collections.
func (h *ReferenceHandler) Collections(c *gin.Context) {
	collections, err := h.reference.Collections(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// Locations handles GET /locations.
func (h *ReferenceHandler) Locations(c *gin.Context) {
	locations, err := h.reference.Locations(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

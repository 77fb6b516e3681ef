package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/domain/setup"
)

// DefinitionHandler creates metaobject definitions from the catalog.
type DefinitionHandler struct {
	*BaseHandler
	definitions *setup.DefinitionService
}

// NewDefinitionHandler creates a definition handler.
func NewDefinitionHandler(base *BaseHandler, definitions *setup.DefinitionService) *DefinitionHandler {
	return &DefinitionHandler{BaseHandler: base, definitions: definitions}
}

// Create handles POST /definitions/:type. An already existing definition is
// reported as success with alreadyExists set.
func (h *DefinitionHandler) Create(c *gin.Context) {
	result, err := h.definitions.Create(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

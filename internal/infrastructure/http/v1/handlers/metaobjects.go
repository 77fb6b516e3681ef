package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/domain/metaobject"
	"shopsetup/internal/domain/setup"
	"shopsetup/internal/infrastructure/http/v1/dto"
)

// MetaobjectHandler mutates metaobject entries.
type MetaobjectHandler struct {
	*BaseHandler
	entries *setup.EntryService
}

// NewMetaobjectHandler creates a metaobject handler.
func NewMetaobjectHandler(base *BaseHandler, entries *setup.EntryService) *MetaobjectHandler {
	return &MetaobjectHandler{BaseHandler: base, entries: entries}
}

// Create handles POST /metaobjects.
func (h *MetaobjectHandler) Create(c *gin.Context) {
	var req dto.CreateMetaobjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.entries.Create(c.Request.Context(), metaobject.CreateInput{
		Type:   req.Type,
		Handle: req.Handle,
		Fields: mapFields(req.Fields),
	})
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

// Update handles PUT /metaobjects/*id. The id is a platform gid containing
// slashes, hence the wildcard route.
func (h *MetaobjectHandler) Update(c *gin.Context) {
	var req dto.UpdateMetaobjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.entries.Update(c.Request.Context(), entryID(c), metaobject.UpdateInput{
		Fields: mapFields(req.Fields),
	})
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

// Delete handles DELETE /metaobjects/*id.
func (h *MetaobjectHandler) Delete(c *gin.Context) {
	result, err := h.entries.Delete(c.Request.Context(), entryID(c))
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

func entryID(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("id"), "/")
}

func mapFields(fields []dto.FieldInput) []metaobject.FieldInput {
	out := make([]metaobject.FieldInput, 0, len(fields))
	for _, f := range fields {
		out = append(out, metaobject.FieldInput{Key: f.Key, Value: f.Value})
	}
	return out
}

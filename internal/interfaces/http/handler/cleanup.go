package handler

import (
	cleanupapp "github.com/atelier/backend/internal/application/cleanup"
	"github.com/atelier/backend/internal/domain/cleanup"
	"github.com/gin-gonic/gin"
)

// CleanupHandler handles record lifecycle API endpoints. Soft delete and
// restore are mounted per resource; purging is an admin operation addressed
// by entity type.
type CleanupHandler struct {
	BaseHandler
	cascadeService *cleanupapp.CascadeService
}

// NewCleanupHandler creates a new CleanupHandler
func NewCleanupHandler(cascadeService *cleanupapp.CascadeService) *CleanupHandler {
	return &CleanupHandler{cascadeService: cascadeService}
}

// SoftDelete returns a handler that soft-deletes a record of the given type
// together with its children
func (h *CleanupHandler) SoftDelete(et cleanup.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			h.BadRequest(c, "Invalid ID")
			return
		}

		if err := h.cascadeService.SoftDelete(c.Request.Context(), et, id); err != nil {
			h.HandleError(c, err)
			return
		}
		h.NoContent(c)
	}
}

// Restore returns a handler that restores a soft-deleted record of the given
// type. Children stay deleted.
func (h *CleanupHandler) Restore(et cleanup.EntityType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			h.BadRequest(c, "Invalid ID")
			return
		}

		if err := h.cascadeService.Restore(c.Request.Context(), et, id); err != nil {
			h.HandleError(c, err)
			return
		}
		h.NoContent(c)
	}
}

// Purge handles DELETE /admin/records/:entity/:id. With force=true a live
// record and its children are purged in one go.
func (h *CleanupHandler) Purge(c *gin.Context) {
	et, err := cleanup.ParseEntityType(c.Param("entity"))
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	force := c.Query("force") == "true"

	if err := h.cascadeService.Purge(c.Request.Context(), et, id, force); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PurgeSampleData handles POST /admin/sample-data/purge
func (h *CleanupHandler) PurgeSampleData(c *gin.Context) {
	removed, err := h.cascadeService.PurgeSampleData(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"rows_removed": removed})
}

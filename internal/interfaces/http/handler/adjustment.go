package handler

import (
	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AdjustmentHandler handles balance adjustment API endpoints. Adjustments are
// append-only; there is no update route.
type AdjustmentHandler struct {
	BaseHandler
	adjService *ledgerapp.AdjustmentService
}

// NewAdjustmentHandler creates a new AdjustmentHandler
func NewAdjustmentHandler(adjService *ledgerapp.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjService: adjService}
}

// Create handles POST /adjustments
func (h *AdjustmentHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.adjService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID handles GET /adjustments/:id
func (h *AdjustmentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid adjustment ID")
		return
	}

	resp, err := h.adjService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /adjustments
func (h *AdjustmentHandler) List(c *gin.Context) {
	var filter ledgerapp.AdjustmentListFilter
	if err := c.ShouldBindWith(&filter, binding.Query); err != nil {
		h.BindingError(c, err)
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	adjustments, total, err := h.adjService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, adjustments, total, filter.Page, filter.PageSize)
}

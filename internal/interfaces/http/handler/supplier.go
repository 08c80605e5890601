package handler

import (
	partnerapp "github.com/atelier/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// SupplierHandler handles supplier and workshop API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// CreateSupplier handles POST /suppliers
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req partnerapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSupplier handles GET /suppliers/:id
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	resp, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSuppliers handles GET /suppliers
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	suppliers, total, err := h.supplierService.ListSuppliers(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, suppliers, total, req.Page, req.PageSize)
}

// CreateWorkshop handles POST /workshops
func (h *SupplierHandler) CreateWorkshop(c *gin.Context) {
	var req partnerapp.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.CreateWorkshop(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetWorkshop handles GET /workshops/:id
func (h *SupplierHandler) GetWorkshop(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid workshop ID")
		return
	}

	resp, err := h.supplierService.GetWorkshop(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListWorkshops handles GET /workshops
func (h *SupplierHandler) ListWorkshops(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	workshops, total, err := h.supplierService.ListWorkshops(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, workshops, total, req.Page, req.PageSize)
}

package handler

import (
	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles income and expense category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *ledgerapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *ledgerapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateIncome handles POST /categories/income
func (h *CategoryHandler) CreateIncome(c *gin.Context) {
	var req ledgerapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.categoryService.CreateIncome(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListIncome handles GET /categories/income
func (h *CategoryHandler) ListIncome(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	categories, total, err := h.categoryService.ListIncome(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, categories, total, req.Page, req.PageSize)
}

// DeleteIncome handles DELETE /categories/income/:id
func (h *CategoryHandler) DeleteIncome(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteIncome(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateExpense handles POST /categories/expense
func (h *CategoryHandler) CreateExpense(c *gin.Context) {
	var req ledgerapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.categoryService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListExpense handles GET /categories/expense
func (h *CategoryHandler) ListExpense(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	categories, total, err := h.categoryService.ListExpense(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, categories, total, req.Page, req.PageSize)
}

// DeleteExpense handles DELETE /categories/expense/:id
func (h *CategoryHandler) DeleteExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteExpense(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

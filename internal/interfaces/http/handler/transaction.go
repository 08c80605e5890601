package handler

import (
	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// TransactionHandler handles money transaction API endpoints
type TransactionHandler struct {
	BaseHandler
	txService *ledgerapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txService *ledgerapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.txService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID handles GET /transactions/:id
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	resp, err := h.txService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter ledgerapp.TransactionListFilter
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

	transactions, total, err := h.txService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, transactions, total, filter.Page, filter.PageSize)
}

// Update handles PUT /transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req ledgerapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.txService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

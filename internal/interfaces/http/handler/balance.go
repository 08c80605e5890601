package handler

import (
	"time"

	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BalanceHandler handles wallet balance and reconciliation API endpoints
type BalanceHandler struct {
	BaseHandler
	balanceService *ledgerapp.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler
func NewBalanceHandler(balanceService *ledgerapp.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// dateRangeQuery carries the optional reporting window
type dateRangeQuery struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// GetBalance handles GET /wallets/:id/balance
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid wallet ID")
		return
	}

	var q dateRangeQuery
	if err := c.ShouldBindWith(&q, binding.Query); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.balanceService.GetBalance(c.Request.Context(), id, q.From, q.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reconcile handles GET /wallets/:id/reconciliation
func (h *BalanceHandler) Reconcile(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid wallet ID")
		return
	}

	var q dateRangeQuery
	if err := c.ShouldBindWith(&q, binding.Query); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.balanceService.Reconcile(c.Request.Context(), id, q.From, q.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

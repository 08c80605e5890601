package handler

import (
	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet API endpoints
type WalletHandler struct {
	BaseHandler
	walletService *ledgerapp.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService *ledgerapp.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// Create handles POST /wallets
func (h *WalletHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.walletService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID handles GET /wallets/:id
func (h *WalletHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid wallet ID")
		return
	}

	resp, err := h.walletService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByCode handles GET /wallets/code/:code
func (h *WalletHandler) GetByCode(c *gin.Context) {
	resp, err := h.walletService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /wallets
func (h *WalletHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	wallets, total, err := h.walletService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, wallets, total, req.Page, req.PageSize)
}

// Update handles PUT /wallets/:id
func (h *WalletHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid wallet ID")
		return
	}

	var req ledgerapp.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.walletService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

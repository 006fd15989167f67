package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/server/http/dto"
)

// ReferralHandler serves referral program endpoints.
type ReferralHandler struct {
	facade ReferralFacade
}

// NewReferralHandler constructs ReferralHandler.
func NewReferralHandler(facade ReferralFacade) *ReferralHandler {
	return &ReferralHandler{facade: facade}
}

// Summary handles GET /api/referrals/:telegramID.
func (h *ReferralHandler) Summary(c *gin.Context) {
	telegramID, ok := PathTelegramID(c)
	if !ok {
		return
	}

	summary, err := h.facade.ReferralSummary(c.Request.Context(), telegramID)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralResponse{
		Code:       summary.Code,
		Balance:    summary.Balance,
		Total:      summary.Total,
		Successful: summary.Successful,
	})
}

// Transfer handles POST /api/transfer-referral.
func (h *ReferralHandler) Transfer(c *gin.Context) {
	var req dto.TransferReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	if err := h.facade.TransferReferral(c.Request.Context(), req.TelegramID, amount); err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transferred": amount})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/server/http/dto"
	"github.com/starbuy/shop/internal/usecase"
)

// DepositHandler manages top-up endpoints.
type DepositHandler struct {
	facade DepositFacade
	store  *upload.Store
}

// NewDepositHandler constructs DepositHandler.
func NewDepositHandler(facade DepositFacade, store *upload.Store) *DepositHandler {
	return &DepositHandler{facade: facade, store: store}
}

// Submit handles POST /api/deposit. A payment screenshot may accompany the
// claim but the external reference alone is enough to submit it.
func (h *DepositHandler) Submit(c *gin.Context) {
	var req dto.SubmitDepositRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	screenshotPath := ""
	if file, err := c.FormFile("screenshot"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid screenshot"})
			return
		}
		defer src.Close()

		screenshotPath, err = h.store.Save(file.Filename, src)
		if err != nil {
			WriteError(c, err)
			return
		}
	}

	deposit, err := h.facade.SubmitDeposit(c.Request.Context(), usecase.SubmitRequest{
		TelegramID:     req.TelegramID,
		Amount:         amount,
		Method:         req.Method,
		Reference:      req.Reference,
		ScreenshotPath: screenshotPath,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDepositResponse(*deposit))
}

// List handles GET /api/deposits/:telegramID.
func (h *DepositHandler) List(c *gin.Context) {
	telegramID, ok := PathTelegramID(c)
	if !ok {
		return
	}

	deposits, err := h.facade.Deposits(c.Request.Context(), telegramID, historyLimit)
	if err != nil {
		WriteError(c, err)
		return
	}

	response := make([]dto.DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		response = append(response, toDepositResponse(d))
	}
	c.JSON(http.StatusOK, response)
}

func toDepositResponse(deposit model.Deposit) dto.DepositResponse {
	return dto.DepositResponse{
		DepositID: deposit.DepositID,
		Amount:    deposit.Amount,
		Method:    string(deposit.Method),
		Reference: deposit.Reference,
		Status:    string(deposit.Status),
		CreatedAt: deposit.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitDepositRequest carries the multipart top-up form.
type SubmitDepositRequest struct {
	TelegramID int64  `form:"telegramId" binding:"required"`
	Amount     string `form:"amount" binding:"required"`
	Method     string `form:"method" binding:"required"`
	Reference  string `form:"reference"`
}

// DepositResponse represents a deposit in listings and submit replies.
type DepositResponse struct {
	DepositID string          `json:"depositId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

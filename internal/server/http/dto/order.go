package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest carries the multipart purchase form. The screenshot part
// is read separately from the multipart payload.
type PlaceOrderRequest struct {
	TelegramID    int64  `form:"telegramId" binding:"required"`
	PackageID     int64  `form:"packageId" binding:"required"`
	PaymentMethod string `form:"paymentMethod" binding:"required"`
	UserInput     string `form:"userInput"`
}

// PlaceStarsOrderRequest carries the stars checkout form. The payment method
// is implied by the endpoint.
type PlaceStarsOrderRequest struct {
	TelegramID int64  `form:"telegramId" binding:"required"`
	PackageID  int64  `form:"packageId" binding:"required"`
	UserInput  string `form:"userInput"`
}

// OrderResponse represents an order in listings and checkout replies.
type OrderResponse struct {
	OrderID     string          `json:"orderId"`
	PackageName string          `json:"packageName"`
	Amount      decimal.Decimal `json:"amount"`
	StarsAmount int64           `json:"starsAmount"`
	Method      string          `json:"paymentMethod"`
	UserInput   string          `json:"userInput"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

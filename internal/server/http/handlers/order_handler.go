package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/server/http/dto"
	"github.com/starbuy/shop/internal/usecase"
)

// OrderHandler manages checkout endpoints.
type OrderHandler struct {
	facade OrderFacade
	store  *upload.Store
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, store *upload.Store) *OrderHandler {
	return &OrderHandler{facade: facade, store: store}
}

// Place handles POST /api/order. The request is a multipart form carrying the
// payment proof screenshot.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	screenshotPath, ok := h.saveScreenshot(c)
	if !ok {
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceRequest{
		TelegramID:     req.TelegramID,
		PackageID:      req.PackageID,
		Method:         req.PaymentMethod,
		UserInput:      req.UserInput,
		ScreenshotPath: screenshotPath,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// PlaceStars handles POST /api/order-stars, the Telegram Stars checkout. Same
// multipart shape as Place minus the payment method field.
func (h *OrderHandler) PlaceStars(c *gin.Context) {
	var req dto.PlaceStarsOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	screenshotPath, ok := h.saveScreenshot(c)
	if !ok {
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceRequest{
		TelegramID:     req.TelegramID,
		PackageID:      req.PackageID,
		Method:         string(model.PaymentMethodStars),
		UserInput:      req.UserInput,
		ScreenshotPath: screenshotPath,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// saveScreenshot persists the mandatory proof part and writes the error
// response itself when the part is missing or unreadable.
func (h *OrderHandler) saveScreenshot(c *gin.Context) (string, bool) {
	file, err := c.FormFile("screenshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "screenshot is required"})
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid screenshot"})
		return "", false
	}
	defer src.Close()

	path, err := h.store.Save(file.Filename, src)
	if err != nil {
		WriteError(c, err)
		return "", false
	}
	return path, true
}

// List handles GET /api/orders/:telegramID.
func (h *OrderHandler) List(c *gin.Context) {
	telegramID, ok := PathTelegramID(c)
	if !ok {
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), telegramID, historyLimit)
	if err != nil {
		WriteError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:     order.OrderID,
		PackageName: order.PackageName,
		Amount:      order.Amount,
		StarsAmount: order.StarsAmount,
		Method:      string(order.Method),
		UserInput:   order.UserInput,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
}

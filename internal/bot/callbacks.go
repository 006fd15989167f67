package bot

import (
	"strings"

	"github.com/starbuy/shop/internal/domain/model"
)

// Callback data tokens understood by the operator chat.
const (
	callbackAdminOrders   = "admin_orders"
	callbackAdminDeposits = "admin_deposits"

	orderCallbackPrefix             = "order_"
	depositCallbackPrefix           = "deposit_"
	orderScreenshotCallbackPrefix   = "screenshot_order_"
	depositScreenshotCallbackPrefix = "screenshot_deposit_"
)

// orderActionCallback renders the callback payload for an order button,
// e.g. order_success_ORD12345678.
func orderActionCallback(action model.OrderAction, orderID string) string {
	return orderCallbackPrefix + string(action) + "_" + orderID
}

func depositActionCallback(action model.DepositAction, depositID string) string {
	return depositCallbackPrefix + string(action) + "_" + depositID
}

func orderScreenshotCallback(orderID string) string {
	return orderScreenshotCallbackPrefix + orderID
}

func depositScreenshotCallback(depositID string) string {
	return depositScreenshotCallbackPrefix + depositID
}

// parseOrderCallback extracts the action and order id from an order
// button payload. Screenshot payloads are not order actions.
func parseOrderCallback(data string) (model.OrderAction, string, bool) {
	rest, found := strings.CutPrefix(data, orderCallbackPrefix)
	if !found {
		return "", "", false
	}
	actionToken, orderID, found := strings.Cut(rest, "_")
	if !found || orderID == "" {
		return "", "", false
	}
	action, ok := model.ParseOrderAction(actionToken)
	if !ok {
		return "", "", false
	}
	return action, orderID, true
}

func parseDepositCallback(data string) (model.DepositAction, string, bool) {
	rest, found := strings.CutPrefix(data, depositCallbackPrefix)
	if !found {
		return "", "", false
	}
	actionToken, depositID, found := strings.Cut(rest, "_")
	if !found || depositID == "" {
		return "", "", false
	}
	action, ok := model.ParseDepositAction(actionToken)
	if !ok {
		return "", "", false
	}
	return action, depositID, true
}

func parseOrderScreenshotCallback(data string) (string, bool) {
	id, found := strings.CutPrefix(data, orderScreenshotCallbackPrefix)
	return id, found && id != ""
}

func parseDepositScreenshotCallback(data string) (string, bool) {
	id, found := strings.CutPrefix(data, depositScreenshotCallbackPrefix)
	return id, found && id != ""
}

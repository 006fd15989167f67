package bot

import (
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/starbuy/shop/internal/domain/model"
)

const welcomeText = "🌟 Welcome to Star Buy Premium Shop ⭐\n\nClick below to open the Mini App:"

func orderAmount(order *model.Order) string {
	if order.Method == model.PaymentMethodStars {
		return fmt.Sprintf("%d ⭐", order.StarsAmount)
	}
	return "$" + order.Amount.StringFixed(2)
}

func orDefault(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatOrder(order *model.Order) string {
	return fmt.Sprintf(
		"📦 Order #%s\n\nUser ID: `%d`\nPackage: %s\nAmount: %s\nInput: %s\nStatus: %s",
		order.OrderID, order.UserID, order.PackageName, orderAmount(order),
		orDefault(order.UserInput), order.Status,
	)
}

func formatOrderPlaced(order *model.Order, user *model.User) string {
	username := "N/A"
	if user != nil && user.Username != "" {
		username = user.Username
	}
	return fmt.Sprintf(
		"🆕 New Order!\n\n📦 Order #%s\nUser ID: `%d`\nUsername: @%s\nPackage: %s\nAmount: %s\nInput: %s\nStatus: %s",
		order.OrderID, order.UserID, username, order.PackageName, orderAmount(order),
		orDefault(order.UserInput), order.Status,
	)
}

func formatOrderResolved(order *model.Order) string {
	return fmt.Sprintf("Order #%s updated to %s", order.OrderID, order.Status)
}

func formatDeposit(deposit *model.Deposit) string {
	return fmt.Sprintf(
		"💰 Deposit #%s\n\nUser ID: `%d`\nAmount: $%s\nMethod: %s\nReference: %s\nStatus: %s",
		deposit.DepositID, deposit.UserID, deposit.Amount.StringFixed(2), deposit.Method,
		orDefault(deposit.Reference), deposit.Status,
	)
}

func formatDepositSubmitted(deposit *model.Deposit, user *model.User) string {
	username := "N/A"
	if user != nil && user.Username != "" {
		username = user.Username
	}
	return fmt.Sprintf(
		"🆕 New Deposit!\n\n💰 Deposit #%s\nUser ID: `%d`\nUsername: @%s\nAmount: $%s\nMethod: %s\nReference: %s\nStatus: %s",
		deposit.DepositID, deposit.UserID, username, deposit.Amount.StringFixed(2),
		deposit.Method, orDefault(deposit.Reference), deposit.Status,
	)
}

func formatDepositResolved(deposit *model.Deposit) string {
	return fmt.Sprintf("Deposit #%s %s", deposit.DepositID, deposit.Status)
}

func formatDashboard(stats *model.AdminStats) string {
	return fmt.Sprintf(
		"📊 Admin Dashboard\n\nTotal Users: %d\nTotal Orders: %d\nPending Orders: %d\nPending Deposits: %d",
		stats.TotalUsers, stats.TotalOrders, stats.PendingOrders, stats.ProcessingDeposits,
	)
}

func formatUserOverview(user *model.User, orders, deposits int) string {
	username := "N/A"
	if user.Username != "" {
		username = user.Username
	}
	return fmt.Sprintf(
		"👤 User Info\n\nUser ID: %d\nUsername: @%s\nMain Balance: $%s\nHold Balance: $%s\nReferral Balance: $%s\n\n📦 Recent Orders: %d\n💰 Recent Deposits: %d",
		user.TelegramID, username,
		user.MainBalance.StringFixed(2), user.HoldBalance.StringFixed(2), user.ReferralBalance.StringFixed(2),
		orders, deposits,
	)
}

// orderKeyboard offers the transitions still permitted from the order's
// current status, plus the screenshot shortcut.
func orderKeyboard(order *model.Order) *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton
	if order.Status == model.OrderStatusPending {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔄 PROCESSING").WithCallbackData(orderActionCallback(model.OrderActionProcessing, order.OrderID)),
		))
	}
	if !order.Status.Terminal() {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ SUCCESS").WithCallbackData(orderActionCallback(model.OrderActionSuccess, order.OrderID)),
			tu.InlineKeyboardButton("❌ CANCEL").WithCallbackData(orderActionCallback(model.OrderActionCancel, order.OrderID)),
		))
	}
	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("📷 VIEW SCREENSHOT").WithCallbackData(orderScreenshotCallback(order.OrderID)),
	))
	return tu.InlineKeyboard(rows...)
}

func depositKeyboard(deposit *model.Deposit) *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton
	if !deposit.Status.Terminal() {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ APPROVE").WithCallbackData(depositActionCallback(model.DepositActionApprove, deposit.DepositID)),
			tu.InlineKeyboardButton("❌ REJECT").WithCallbackData(depositActionCallback(model.DepositActionReject, deposit.DepositID)),
		))
	}
	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("📷 VIEW SCREENSHOT").WithCallbackData(depositScreenshotCallback(deposit.DepositID)),
	))
	return tu.InlineKeyboard(rows...)
}

func dashboardKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("📦 View Orders").WithCallbackData(callbackAdminOrders)),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("💰 View Deposits").WithCallbackData(callbackAdminDeposits)),
	)
}

func welcomeKeyboard(webAppURL, officialChannel string) *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton
	if webAppURL != "" {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("⭐ OPEN SHOP").WithWebApp(&telego.WebAppInfo{URL: webAppURL}),
		))
	}
	if officialChannel != "" {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📢 OFFICIAL CHANNEL").WithURL(officialChannel),
		))
	}
	if len(rows) == 0 {
		return nil
	}
	return tu.InlineKeyboard(rows...)
}

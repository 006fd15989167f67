package usecase

import "github.com/starbuy/shop/internal/domain/model"

// OrderNotifier delivers order events to the admin chat and the buyer.
// Delivery is asynchronous and must not block the caller.
type OrderNotifier interface {
	OrderPlaced(order *model.Order, user *model.User)
	OrderResolved(order *model.Order)
}

// DepositNotifier delivers deposit events.
type DepositNotifier interface {
	DepositSubmitted(deposit *model.Deposit, user *model.User)
	DepositResolved(deposit *model.Deposit)
}

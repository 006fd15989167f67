package model

// AdminStats aggregates counts shown on the operator dashboard.
type AdminStats struct {
	TotalUsers         int64
	TotalOrders        int64
	PendingOrders      int64
	ProcessingDeposits int64
}

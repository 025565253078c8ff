package entities

// DashboardStats - сводка за текущие сутки, как её считает Order API.
type DashboardStats struct {
	TodaysOrders       int
	TodaysRevenueMinor int64
	PendingOrders      int
	LowStockItems      int
	RecentOrders       []RecentOrder
}

type RecentOrder struct {
	ID          string
	Customer    string
	AmountMinor int64
	Status      OrderStatusType
}

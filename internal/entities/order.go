package entities

import "time"

type Order struct {
	ID          string
	Code        string
	Status      OrderStatusType
	AmountMinor int64 // сумма в минорных единицах валюты, без float
	Payment     *Payment
	Customer    *Customer
	CreatedAt   time.Time
}

type Payment struct {
	State         string
	Mode          string
	TransactionID string
}

type Customer struct {
	FirstName string
	LastName  string
}

func (c *Customer) FullName() string {
	if c == nil {
		return ""
	}
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type OrderStatusType string

const (
	OrderPending         OrderStatusType = "PENDING"
	OrderPlaced          OrderStatusType = "PLACED"
	OrderConfirmed       OrderStatusType = "CONFIRMED"
	OrderProcessing      OrderStatusType = "PROCESSING"
	OrderPacked          OrderStatusType = "PACKED"
	OrderShipped         OrderStatusType = "SHIPPED"
	OrderOutForDelivery  OrderStatusType = "OUT_FOR_DELIVERY"
	OrderDelivered       OrderStatusType = "DELIVERED"
	OrderCancelled       OrderStatusType = "CANCELLED"
	OrderReturnRequested OrderStatusType = "RETURN_REQUESTED"
	OrderReturned        OrderStatusType = "RETURNED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsKnown сообщает, входит ли статус в перечень статусов заказа.
func (s OrderStatusType) IsKnown() bool {
	switch s {
	case OrderPending, OrderPlaced, OrderConfirmed, OrderProcessing, OrderPacked, OrderShipped,
		OrderOutForDelivery, OrderDelivered, OrderCancelled, OrderReturnRequested, OrderReturned:
		return true
	default:
		return false
	}
}

// OrderFilter - параметры выборки списка заказов. Пустой Search означает "все заказы".
type OrderFilter struct {
	Search string
}

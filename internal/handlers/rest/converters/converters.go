// Package converters переводит сущности в сгенерированные DTO HTTP API.
package converters

import (
	"console/internal/entities"
	"console/internal/generated/dto"
	"github.com/AlekSi/pointer"
)

func FromOrder(order entities.Order) dto.Order {
	res := dto.Order{
		ID:          order.ID,
		OrderCode:   order.Code,
		Status:      order.Status.String(),
		AmountMinor: order.AmountMinor,
		CreatedAt:   order.CreatedAt,
	}

	if order.Payment != nil {
		res.PaymentState = optional(order.Payment.State)
		res.PaymentMode = optional(order.Payment.Mode)
	}

	res.CustomerName = optional(order.Customer.FullName())

	return res
}

// FromOrders всегда возвращает не-nil срез, чтобы пустой список кодировался как [].
func FromOrders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, FromOrder(o))
	}
	return res
}

func FromDashboardStats(stats entities.DashboardStats) dto.DashboardStats {
	recent := make([]dto.RecentOrder, 0, len(stats.RecentOrders))
	for _, o := range stats.RecentOrders {
		recent = append(recent, dto.RecentOrder{
			ID:          o.ID,
			Customer:    o.Customer,
			AmountMinor: o.AmountMinor,
			Status:      o.Status.String(),
		})
	}

	return dto.DashboardStats{
		TodaysOrders:       stats.TodaysOrders,
		TodaysRevenueMinor: stats.TodaysRevenueMinor,
		PendingOrders:      stats.PendingOrders,
		LowStockItems:      stats.LowStockItems,
		RecentOrders:       recent,
	}
}

func FromNotifications(notifications []entities.Notification) []dto.Notification {
	res := make([]dto.Notification, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, dto.Notification{
			ID:        n.ID,
			OrderID:   n.OrderID,
			OrderCode: n.OrderCode,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
		})
	}
	return res
}

func FromPayment(p entities.PaymentTransaction) dto.Payment {
	res := dto.Payment{
		ID:              p.ID,
		MerchantOrderID: p.MerchantOrderID,
		State:           p.State,
		PaymentMode:     optional(p.Mode),
		TransactionID:   optional(p.TransactionID),
		AmountMinor:     p.AmountMinor,
		UserID:          p.UserID,
		CreatedAt:       p.CreatedAt,
	}

	if p.User != nil {
		res.User = &dto.PaymentUser{
			Username: p.User.Username,
			Email:    optional(p.User.Email),
		}
	}

	return res
}

func FromPayments(payments []entities.PaymentTransaction) []dto.Payment {
	res := make([]dto.Payment, 0, len(payments))
	for _, p := range payments {
		res = append(res, FromPayment(p))
	}
	return res
}

func FromUsers(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, dto.User{
			ID:       u.ID,
			Name:     optional(u.Name),
			Username: u.Username,
			Email:    optional(u.Email),
			Role:     u.Role.String(),
		})
	}
	return res
}

func NewError(title, message string) dto.Error {
	return dto.Error{Error: title, Message: optional(message)}
}

// optional превращает пустую строку в отсутствующее поле.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return pointer.To(s)
}

package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"console/internal/entities"
)

var errUnknownStatus = errors.New("unknown order status")

const minorDigits = 2

func toDomain(dto *orderDTO) (*entities.Order, error) {
	status := entities.OrderStatusType(dto.Status)
	if !status.IsKnown() {
		return nil, fmt.Errorf("order %s: %w %q", dto.ID, errUnknownStatus, dto.Status)
	}

	payment, err := dto.payment()
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:          string(dto.ID),
		Code:        dto.OrderCode,
		Status:      status,
		AmountMinor: dto.Amount,
		CreatedAt:   dto.CreatedAt,
	}

	if payment != nil {
		order.Payment = &entities.Payment{
			State:         payment.State,
			Mode:          payment.PaymentMode,
			TransactionID: payment.TransactionID,
		}
	}

	if dto.Shipping != nil {
		order.Customer = &entities.Customer{
			FirstName: dto.Shipping.FirstName,
			LastName:  dto.Shipping.LastName,
		}
	}

	return order, nil
}

func paymentToDomain(dto *paymentRecordDTO) entities.PaymentTransaction {
	p := entities.PaymentTransaction{
		ID:              string(dto.ID),
		MerchantOrderID: dto.MerchantOrderID,
		State:           dto.State,
		Mode:            dto.PaymentMode,
		TransactionID:   dto.TransactionID,
		AmountMinor:     dto.Amount,
		UserID:          string(dto.UserID),
		CreatedAt:       dto.CreatedAt,
	}
	if dto.User != nil {
		p.User = &entities.User{
			ID:       string(dto.UserID),
			Username: dto.User.Username,
			Email:    dto.User.Email,
		}
	}
	return p
}

func userToDomain(dto *userDTO) entities.User {
	return entities.User{
		ID:       string(dto.ID),
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
		Role:     entities.UserRole(dto.Role),
	}
}

// dashboardToDomain не фильтрует статусы последних заказов, это делает шлюз.
func dashboardToDomain(dto *dashboardResponse) (*entities.DashboardStats, error) {
	revenue, err := minorFromMajor(dto.DashboardStats.TodaysRevenue)
	if err != nil {
		return nil, fmt.Errorf("todays revenue: %w", err)
	}

	stats := &entities.DashboardStats{
		TodaysOrders:       dto.DashboardStats.TodaysOrders,
		TodaysRevenueMinor: revenue,
		PendingOrders:      dto.DashboardStats.PendingOrders,
		LowStockItems:      dto.DashboardStats.LowStockItems,
		RecentOrders:       make([]entities.RecentOrder, 0, len(dto.RecentOrders)),
	}

	for _, o := range dto.RecentOrders {
		amount, err := minorFromMajor(o.Amount)
		if err != nil {
			return nil, fmt.Errorf("recent order %s amount: %w", o.ID, err)
		}
		stats.RecentOrders = append(stats.RecentOrders, entities.RecentOrder{
			ID:          string(o.ID),
			Customer:    o.Customer,
			AmountMinor: amount,
			Status:      entities.OrderStatusType(o.Status),
		})
	}

	return stats, nil
}

// minorFromMajor переводит сумму в основных единицах ("1250.5") в минорные (125050)
// без float. Дробная часть длиннее двух знаков допустима только нулями.
func minorFromMajor(n json.Number) (int64, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, nil
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > minorDigits {
		if strings.Trim(frac[minorDigits:], "0") != "" {
			return 0, fmt.Errorf("amount %q has more than %d fractional digits", s, minorDigits)
		}
		frac = frac[:minorDigits]
	}
	frac += strings.Repeat("0", minorDigits-len(frac))

	if whole == "" || whole == "-" {
		whole += "0"
	}

	v, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	return v, nil
}

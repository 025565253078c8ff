package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type itemResponse[T any] struct {
	Data *T `json:"data"`
}

type orderDTO struct {
	ID        recordID        `json:"id"`
	OrderCode string          `json:"order_code"`
	Status    string          `json:"status"`
	Amount    int64           `json:"amount_paise"`
	Payments  json.RawMessage `json:"payments"`
	Shipping  *addressDTO     `json:"shipping_address_snapshot"`
	CreatedAt time.Time       `json:"created_at"`
}

type paymentDTO struct {
	State         string `json:"state"`
	PaymentMode   string `json:"payment_mode"`
	TransactionID string `json:"transaction_id"`
}

type addressDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type paymentRecordDTO struct {
	ID              recordID        `json:"id"`
	MerchantOrderID string          `json:"merchant_order_id"`
	State           string          `json:"state"`
	PaymentMode     string          `json:"payment_mode"`
	TransactionID   string          `json:"transaction_id"`
	Amount          int64           `json:"amount"`
	UserID          recordID        `json:"user_id"`
	User            *paymentUserDTO `json:"user"`
	CreatedAt       time.Time       `json:"created_at"`
}

type paymentUserDTO struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type userDTO struct {
	ID       recordID `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
}

type invoiceResponse struct {
	URL string `json:"url"`
}

// суммы в сводке приходят в основных единицах (рупиях), возможно дробными
type dashboardResponse struct {
	DashboardStats dashboardStatsDTO `json:"dashboardStats"`
	RecentOrders   []recentOrderDTO  `json:"recentOrders"`
}

type dashboardStatsDTO struct {
	TodaysOrders  int         `json:"todaysOrders"`
	TodaysRevenue json.Number `json:"todaysRevenue"`
	PendingOrders int         `json:"pendingOrders"`
	LowStockItems int         `json:"lowStockItems"`
}

type recentOrderDTO struct {
	ID       recordID    `json:"id"`
	Customer string      `json:"customer"`
	Amount   json.Number `json:"amount"`
	Status   string      `json:"status"`
}

// recordID принимает id как строкой, так и числом.
type recordID string

func (r *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = recordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("record id %s is not an integer: %w", n, err)
	}
	*r = recordID(n.String())
	return nil
}

// payment разбирает поле payments, которое приходит объектом или массивом.
func (o *orderDTO) payment() (*paymentDTO, error) {
	raw := bytes.TrimSpace(o.Payments)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var list []paymentDTO
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("payments: %w", err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var p paymentDTO
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	return &p, nil
}

package entities

import "time"

// PaymentTransaction - платёж из журнала платёжного провайдера.
type PaymentTransaction struct {
	ID              string
	MerchantOrderID string
	State           string
	Mode            string
	TransactionID   string
	AmountMinor     int64
	UserID          string
	User            *User
	CreatedAt       time.Time
}

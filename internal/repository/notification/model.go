package notification

import "time"

type NotificationDB struct {
	ID        int64
	OrderID   string
	OrderCode string
	Title     string
	Body      string
	CreatedAt time.Time
}

package entities

import "time"

// NotificationMessage - запрос на уведомление оператора.
// OrderID и OrderCode используются для дедупликации и не попадают в текст.
type NotificationMessage struct {
	Title     string
	Body      string
	OrderID   string
	OrderCode string
}

type Notification struct {
	ID        int64
	OrderID   string
	OrderCode string
	Title     string
	Body      string
	CreatedAt time.Time
}

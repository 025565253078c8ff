package notification

import (
	"console/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:        n.ID,
		OrderID:   n.OrderID,
		OrderCode: n.OrderCode,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

func FromDomain(n *entities.Notification) *NotificationDB {
	if n == nil {
		return nil
	}

	return &NotificationDB{
		ID:        n.ID,
		OrderID:   n.OrderID,
		OrderCode: n.OrderCode,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

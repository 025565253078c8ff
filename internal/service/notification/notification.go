package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"console/internal/entities"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type Service struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	enabled    bool
	now        func() time.Time
}

func New(repository Repository, publisher Publisher, txManager TxManager, enabled bool) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		enabled:    enabled,
		now:        time.Now,
	}
}

func (s *Service) CanNotify() bool {
	return s.enabled
}

// Notify записывает уведомление в журнал и публикует его в одной транзакции:
// при ошибке публикации запись откатывается. Повтор по тому же коду заказа
// молча пропускается.
func (s *Service) Notify(ctx context.Context, message entities.NotificationMessage) error {
	if !s.enabled {
		return ErrDisabled
	}

	if strings.TrimSpace(message.Title) == "" ||
		strings.TrimSpace(message.Body) == "" ||
		strings.TrimSpace(message.OrderCode) == "" {
		return ErrInvalidMessage
	}

	n := entities.Notification{
		OrderID:   message.OrderID,
		OrderCode: message.OrderCode,
		Title:     message.Title,
		Body:      message.Body,
		CreatedAt: s.now().UTC(),
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Create(ctx, n)
		if err != nil {
			return fmt.Errorf("save notification: %w", err)
		}
		n.ID = id

		err = s.publisher.Publish(ctx, n)
		if err != nil {
			return fmt.Errorf("publish notification: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyNotified) {
			return nil
		}
		return fmt.Errorf("notify order %s: %w", message.OrderCode, err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, limit int) ([]entities.Notification, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	notifications, err := s.repository.List(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

package notification

import (
	"context"
	"fmt"

	"console/internal/entities"
	"console/internal/repository"
	"console/internal/service/notification"
	sq "github.com/Masterminds/squirrel"
)

const tableName = "notifications"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Notification) (int64, error) {
	model := FromDomain(&n)

	query, args, err := qb.
		Insert(tableName).
		Columns("order_id", "order_code", "title", "body", "created_at").
		Values(model.OrderID, model.OrderCode, model.Title, model.Body, model.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, notification.ErrAlreadyNotified
		}
		return 0, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) List(ctx context.Context, limit uint64) ([]entities.Notification, error) {
	query, args, err := qb.
		Select("id", "order_id", "order_code", "title", "body", "created_at").
		From(tableName).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var model NotificationDB
		err := rows.Scan(
			&model.ID,
			&model.OrderID,
			&model.OrderCode,
			&model.Title,
			&model.Body,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *ToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

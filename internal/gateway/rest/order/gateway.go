package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"console/internal/entities"
	"console/internal/service"
	"console/internal/service/invoice"
	"console/internal/service/ordersync"
	"console/internal/service/payment"
	"console/pkg/logger"
	retrierconfig "console/pkg/retrier"
	"console/pkg/retrier/backoff_adapter"
	"github.com/google/uuid"
)

const (
	serviceName = "order-api"

	maxResponseBytes = 10 << 20
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

// OrderGateway - клиент Order API: заказы, платежи, пользователи, сводка.
type OrderGateway struct {
	log     handlerLogger
	client  httpDoer
	baseURL string
	retrier retrier
}

func New(log handlerLogger, client httpDoer, baseURL string) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &OrderGateway{
		log:     log.With(logger.NewField("gateway", serviceName)),
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (o *OrderGateway) ListOrders(ctx context.Context, token string, filter entities.OrderFilter) ([]entities.Order, error) {
	query := url.Values{}
	query.Set("search", filter.Search)
	endpoint := o.baseURL + "/orders?" + query.Encode()

	var resp listResponse[orderDTO]
	err := o.executeWithMetrics(ctx, "ListOrders", func(ctx context.Context) error {
		resp = listResponse[orderDTO]{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, list orders: %w", classify(err, nil))
	}

	orders := make([]entities.Order, 0, len(resp.Data))
	for i := range resp.Data {
		order, err := toDomain(&resp.Data[i])
		if errors.Is(err, errUnknownStatus) {
			o.log.Warn("order with unknown status skipped",
				logger.NewField("order_id", string(resp.Data[i].ID)),
				logger.NewField("status", resp.Data[i].Status),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("gateway order, list orders: %w: %w", service.ErrFetch, err)
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (o *OrderGateway) GetOrder(ctx context.Context, token string, id string) (*entities.Order, error) {
	endpoint := o.baseURL + "/orders/" + url.PathEscape(id)

	var resp itemResponse[orderDTO]
	err := o.executeWithMetrics(ctx, "GetOrder", func(ctx context.Context) error {
		resp = itemResponse[orderDTO]{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order %s: %w", id, classify(err, ordersync.ErrOrderNotFound))
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("gateway order, get order %s: %w: empty data", id, service.ErrFetch)
	}

	order, err := toDomain(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order %s: %w: %w", id, service.ErrFetch, err)
	}
	return order, nil
}

// GetInvoiceURL возвращает ссылку на счёт заказа по его коду.
func (o *OrderGateway) GetInvoiceURL(ctx context.Context, token string, orderCode string) (string, error) {
	endpoint := o.baseURL + "/orders/" + url.PathEscape(orderCode) + "/invoice"

	var resp invoiceResponse
	err := o.executeWithMetrics(ctx, "GetInvoiceURL", func(ctx context.Context) error {
		resp = invoiceResponse{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway order, get invoice %s: %w", orderCode, classify(err, invoice.ErrInvoiceNotFound))
	}
	return strings.TrimSpace(resp.URL), nil
}

func (o *OrderGateway) GetDashboard(ctx context.Context, token string) (*entities.DashboardStats, error) {
	endpoint := o.baseURL + "/dashboard"

	var resp dashboardResponse
	err := o.executeWithMetrics(ctx, "GetDashboard", func(ctx context.Context) error {
		resp = dashboardResponse{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get dashboard: %w", classify(err, nil))
	}

	stats, err := dashboardToDomain(&resp)
	if err != nil {
		return nil, fmt.Errorf("gateway order, get dashboard: %w: %w", service.ErrFetch, err)
	}

	recent := make([]entities.RecentOrder, 0, len(stats.RecentOrders))
	for _, order := range stats.RecentOrders {
		if !order.Status.IsKnown() {
			o.log.Warn("recent order with unknown status skipped",
				logger.NewField("order_id", order.ID),
				logger.NewField("status", order.Status.String()),
			)
			continue
		}
		recent = append(recent, order)
	}
	stats.RecentOrders = recent

	return stats, nil
}

func (o *OrderGateway) ListPayments(ctx context.Context, token string) ([]entities.PaymentTransaction, error) {
	endpoint := o.baseURL + "/payments"

	var resp listResponse[paymentRecordDTO]
	err := o.executeWithMetrics(ctx, "ListPayments", func(ctx context.Context) error {
		resp = listResponse[paymentRecordDTO]{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, list payments: %w", classify(err, nil))
	}

	payments := make([]entities.PaymentTransaction, 0, len(resp.Data))
	for i := range resp.Data {
		payments = append(payments, paymentToDomain(&resp.Data[i]))
	}
	return payments, nil
}

func (o *OrderGateway) GetPayment(ctx context.Context, token string, id string) (*entities.PaymentTransaction, error) {
	endpoint := o.baseURL + "/payments/" + url.PathEscape(id)

	var resp itemResponse[paymentRecordDTO]
	err := o.executeWithMetrics(ctx, "GetPayment", func(ctx context.Context) error {
		resp = itemResponse[paymentRecordDTO]{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get payment %s: %w", id, classify(err, payment.ErrPaymentNotFound))
	}

	// оригинальная консоль показывает "не найден" и на пустой data
	if resp.Data == nil {
		return nil, fmt.Errorf("gateway order, get payment %s: %w", id, payment.ErrPaymentNotFound)
	}

	result := paymentToDomain(resp.Data)
	return &result, nil
}

func (o *OrderGateway) ListUsers(ctx context.Context, token string) ([]entities.User, error) {
	endpoint := o.baseURL + "/user"

	var resp listResponse[userDTO]
	err := o.executeWithMetrics(ctx, "ListUsers", func(ctx context.Context) error {
		resp = listResponse[userDTO]{}
		return o.getJSON(ctx, endpoint, token, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, list users: %w", classify(err, nil))
	}

	users := make([]entities.User, 0, len(resp.Data))
	for i := range resp.Data {
		users = append(users, userToDomain(&resp.Data[i]))
	}
	return users, nil
}

func (o *OrderGateway) getJSON(ctx context.Context, endpoint, token string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return &malformedError{err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{code: resp.StatusCode}
	}

	err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(dst)
	if err != nil {
		return &malformedError{err: err}
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.code, http.StatusText(e.code))
}

type malformedError struct {
	err error
}

func (e *malformedError) Error() string {
	return "malformed response: " + e.err.Error()
}

func (e *malformedError) Unwrap() error {
	return e.err
}

// classify переводит ошибку запроса в ошибки сервисов. notFound, если задан,
// возвращается на 404.
func classify(err error, notFound error) error {
	var se *statusError
	if errors.As(err, &se) {
		switch {
		case se.code == http.StatusUnauthorized || se.code == http.StatusForbidden:
			return fmt.Errorf("%w: %w", service.ErrAuth, err)
		case se.code == http.StatusNotFound && notFound != nil:
			return fmt.Errorf("%w: %w", notFound, err)
		}
	}
	return fmt.Errorf("%w: %w", service.ErrFetch, err)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		switch se.code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var me *malformedError
	if errors.As(err, &me) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	var me *malformedError
	if errors.As(err, &me) {
		return "MALFORMED"
	}
	return "NETWORK"
}

package ordersync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"console/internal/entities"
	"console/internal/service"
	"console/pkg/logger"
)

const (
	newOrderTitle      = "New Order Received"
	newOrderBodyFormat = "Order %s placed"
)

// Controller держит локальную копию списка заказов и сверяет её с Order API
// по событиям об изменениях. Все записи в список происходят под mu; после каждого
// сетевого вызова состояние проверяется повторно.
type Controller struct {
	log      handlerLogger
	api      OrderAPI
	auth     AuthProvider
	events   EventChannel
	notifier Notifier

	mu           sync.Mutex
	orders       []entities.Order
	active       bool
	subscribed   bool
	subscription Subscription
	lastFilter   entities.OrderFilter
	issuedSeq    uint64
	appliedSeq   uint64
}

func New(log handlerLogger, api OrderAPI, auth AuthProvider, events EventChannel, notifier Notifier) *Controller {
	return &Controller{
		log:      log.With(logger.NewField("component", "order_sync")),
		api:      api,
		auth:     auth,
		events:   events,
		notifier: notifier,
		orders:   []entities.Order{},
		active:   true,
	}
}

// Initialize загружает список заказов целиком. При ошибке состояние не меняется.
func (c *Controller) Initialize(ctx context.Context, filter entities.OrderFilter) error {
	return c.reload(ctx, filter, kindInitialize)
}

// ManualRefresh перезагружает список. Из нескольких конкурентных вызовов
// применяется самый поздний выданный запрос; опоздавшие старые ответы отбрасываются.
func (c *Controller) ManualRefresh(ctx context.Context, filter entities.OrderFilter) error {
	return c.reload(ctx, filter, kindRefresh)
}

// Resync повторяет последнюю загрузку с тем же фильтром.
func (c *Controller) Resync(ctx context.Context) error {
	c.mu.Lock()
	filter := c.lastFilter
	c.mu.Unlock()

	return c.reload(ctx, filter, kindRefresh)
}

func (c *Controller) reload(ctx context.Context, filter entities.OrderFilter, kind string) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return ErrRetired
	}
	token, ok := c.auth.AccessToken()
	if !ok {
		c.mu.Unlock()
		ReconcileTotal.WithLabelValues(kind, outcomeNoSession).Inc()
		return service.ErrAuth
	}
	c.issuedSeq++
	ticket := c.issuedSeq
	c.lastFilter = filter
	c.mu.Unlock()

	orders, err := c.api.ListOrders(ctx, token, filter)
	if err != nil {
		ReconcileTotal.WithLabelValues(kind, outcomeFailed).Inc()
		return fmt.Errorf("list orders: %w", classify(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		ReconcileTotal.WithLabelValues(kind, outcomeDiscarded).Inc()
		return ErrRetired
	}

	if ticket <= c.appliedSeq {
		ReconcileTotal.WithLabelValues(kind, outcomeDiscarded).Inc()
		c.log.Info("stale order list response discarded",
			logger.NewField("ticket", ticket),
			logger.NewField("applied", c.appliedSeq),
		)
		return nil
	}

	c.orders = uniqueByID(orders)
	c.appliedSeq = ticket
	OrderListSize.Set(float64(len(c.orders)))
	ReconcileTotal.WithLabelValues(kind, outcomeApplied).Inc()

	return nil
}

// SubscribeToChanges открывает единственную подписку на события изменения заказов.
// Возвращаемая функция снимает подписку и выводит контроллер из работы.
func (c *Controller) SubscribeToChanges(ctx context.Context) (func(), error) {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil, ErrRetired
	}
	if c.subscribed {
		c.mu.Unlock()
		return nil, ErrAlreadySubscribed
	}
	c.subscribed = true
	c.mu.Unlock()

	sub, err := c.events.Subscribe(ctx, c.handleEvent)
	if err != nil {
		c.mu.Lock()
		c.subscribed = false
		c.mu.Unlock()
		return nil, fmt.Errorf("subscribe to order changes: %w", err)
	}

	c.mu.Lock()
	if !c.active {
		// Retire успел отработать, пока открывалась подписка.
		c.mu.Unlock()
		c.closeSubscription(sub)
		return nil, ErrRetired
	}
	c.subscription = sub
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(c.Retire)
	}, nil
}

// Retire снимает подписку и переводит контроллер в неактивное состояние.
// Результаты всех незавершённых операций после этого отбрасываются.
func (c *Controller) Retire() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	sub := c.subscription
	c.subscription = nil
	c.orders = []entities.Order{}
	c.mu.Unlock()

	OrderListSize.Set(0)

	if sub != nil {
		c.closeSubscription(sub)
	}
	c.log.Info("order sync controller retired")
}

func (c *Controller) closeSubscription(sub Subscription) {
	if err := sub.Close(); err != nil {
		c.log.Error("failed to close order changes subscription",
			logger.NewField("error", err),
		)
	}
}

func (c *Controller) handleEvent(ctx context.Context, event entities.ChangeEvent) {
	if event.RecordID == "" {
		c.log.Warn("order change event without record id dropped",
			logger.NewField("type", event.Type.String()),
		)
		return
	}

	switch event.Type {
	case entities.ChangeInsert:
		c.ReconcileInsert(ctx, event.RecordID)
	case entities.ChangeUpdate:
		c.ReconcileUpdate(ctx, event.RecordID)
	default:
		ReconcileTotal.WithLabelValues(kindOther, outcomeIgnored).Inc()
	}
}

// ReconcileInsert подтягивает новый заказ и ставит его в начало списка.
// Ошибки логируются и не возвращаются.
func (c *Controller) ReconcileInsert(ctx context.Context, id string) {
	order, ok := c.fetchOrder(ctx, kindInsert, id)
	if !ok {
		return
	}

	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		ReconcileTotal.WithLabelValues(kindInsert, outcomeDiscarded).Inc()
		return
	}

	if idx := c.indexOf(order.ID); idx >= 0 {
		c.orders[idx] = *order
		c.mu.Unlock()
		ReconcileTotal.WithLabelValues(kindInsert, outcomeReplaced).Inc()
		return
	}

	c.orders = append([]entities.Order{*order}, c.orders...)
	OrderListSize.Set(float64(len(c.orders)))
	c.mu.Unlock()

	ReconcileTotal.WithLabelValues(kindInsert, outcomeApplied).Inc()

	c.notifyNewOrder(ctx, order)
}

// ReconcileUpdate заменяет заказ на месте. Заказы, которых нет в списке, не добавляются.
func (c *Controller) ReconcileUpdate(ctx context.Context, id string) {
	order, ok := c.fetchOrder(ctx, kindUpdate, id)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		ReconcileTotal.WithLabelValues(kindUpdate, outcomeDiscarded).Inc()
		return
	}

	idx := c.indexOf(order.ID)
	if idx < 0 {
		ReconcileTotal.WithLabelValues(kindUpdate, outcomeIgnored).Inc()
		return
	}

	c.orders[idx] = *order
	ReconcileTotal.WithLabelValues(kindUpdate, outcomeReplaced).Inc()
}

func (c *Controller) fetchOrder(ctx context.Context, kind, id string) (*entities.Order, bool) {
	eventLog := c.log.With(
		logger.NewField("kind", kind),
		logger.NewField("order_id", id),
	)

	token, ok := c.auth.AccessToken()
	if !ok {
		ReconcileTotal.WithLabelValues(kind, outcomeNoSession).Inc()
		eventLog.Warn("order change dropped: no active session")
		return nil, false
	}

	order, err := c.api.GetOrder(ctx, token, id)
	if err != nil {
		ReconcileTotal.WithLabelValues(kind, outcomeFailed).Inc()
		eventLog.Error("failed to fetch changed order",
			logger.NewField("error", err),
		)
		return nil, false
	}

	if order.ID == "" {
		order.ID = id
	}
	return order, true
}

func (c *Controller) notifyNewOrder(ctx context.Context, order *entities.Order) {
	if !c.notifier.CanNotify() {
		return
	}

	err := c.notifier.Notify(ctx, entities.NotificationMessage{
		Title:     newOrderTitle,
		Body:      fmt.Sprintf(newOrderBodyFormat, order.Code),
		OrderID:   order.ID,
		OrderCode: order.Code,
	})
	if err != nil {
		c.log.Error("failed to notify about new order",
			logger.NewField("order_code", order.Code),
			logger.NewField("error", err),
		)
	}
}

// Orders возвращает копию текущего списка.
func (c *Controller) Orders() []entities.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	orders := make([]entities.Order, len(c.orders))
	copy(orders, c.orders)
	return orders
}

// FindOrder ищет заказ в списке, а если его там нет (например, он не попал
// под фильтр), запрашивает Order API. Найденный так заказ в список не попадает.
func (c *Controller) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil, ErrRetired
	}
	if idx := c.indexOf(id); idx >= 0 {
		order := c.orders[idx]
		c.mu.Unlock()
		return &order, nil
	}
	c.mu.Unlock()

	token, ok := c.auth.AccessToken()
	if !ok {
		return nil, service.ErrAuth
	}

	order, err := c.api.GetOrder(ctx, token, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get order %s: %w", id, classify(err))
	}
	return order, nil
}

func (c *Controller) OrderByCode(code string) (*entities.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.orders {
		if c.orders[i].Code == code {
			order := c.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (c *Controller) indexOf(id string) int {
	for i := range c.orders {
		if c.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func classify(err error) error {
	if errors.Is(err, service.ErrAuth) || errors.Is(err, service.ErrFetch) {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrFetch, err)
}

func uniqueByID(orders []entities.Order) []entities.Order {
	seen := make(map[string]struct{}, len(orders))
	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.ID]; ok {
			continue
		}
		seen[order.ID] = struct{}{}
		result = append(result, order)
	}
	return result
}

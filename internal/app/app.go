package app

import (
	"context"
	"net/http"
	"time"

	"console/internal/entities"
	notificationPublisher "console/internal/gateway/kafka/notifications"
	"console/internal/gateway/kafka/orderevents"
	orderGateway "console/internal/gateway/rest/order"
	"console/internal/handlers/rest/dashboard_get"
	"console/internal/handlers/rest/notifications_get"
	"console/internal/handlers/rest/order_get"
	"console/internal/handlers/rest/order_invoice_get"
	"console/internal/handlers/rest/orders_get"
	"console/internal/handlers/rest/orders_refresh_post"
	"console/internal/handlers/rest/payment_get"
	"console/internal/handlers/rest/payments_get"
	"console/internal/handlers/rest/session_delete"
	"console/internal/handlers/rest/session_put"
	"console/internal/handlers/rest/users_get"
	"console/internal/handlers/tasks/orders_resync"
	"console/internal/pkg/config"
	"console/internal/pkg/httpclient"
	notificationRepo "console/internal/repository/notification"
	dashboardService "console/internal/service/dashboard"
	invoiceService "console/internal/service/invoice"
	notificationService "console/internal/service/notification"
	"console/internal/service/ordersync"
	paymentService "console/internal/service/payment"
	"console/internal/service/session"
	userService "console/internal/service/user"
	"console/pkg/background"
	"console/pkg/logger"
	"console/pkg/querier"
	"console/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResyncInterval time.Duration

type Application struct {
	OrderSync            OrderSync
	ServiceOrders        ServiceOrders
	ServiceSession       ServiceSession
	ServiceDashboard     ServiceDashboard
	ServiceNotifications ServiceNotifications
	ServicePayments      ServicePayments
	ServiceUsers         ServiceUsers
	ServiceInvoices      ServiceInvoices
	BackgroundWorkers    *background.Worker
}

// OrderSync - жизненный цикл контроллера синхронизации, им управляет main.
type OrderSync interface {
	Initialize(ctx context.Context, filter entities.OrderFilter) error
	SubscribeToChanges(ctx context.Context) (func(), error)
	Retire()
}

type ServiceOrders interface {
	orders_get.Service
	order_get.Service
	orders_refresh_post.Service
	session_put.OrdersLoader
}

type ServiceSession interface {
	session_put.Service
	session_delete.Service
}

type ServiceDashboard interface {
	dashboard_get.Service
}

type ServiceNotifications interface {
	notifications_get.Service
}

type ServicePayments interface {
	payments_get.Service
	payment_get.Service
}

type ServiceUsers interface {
	users_get.Service
}

type ServiceInvoices interface {
	order_invoice_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideNotificationPublisher(producer sarama.SyncProducer, cfg *config.Config) *notificationPublisher.Publisher {
	return notificationPublisher.New(producer, cfg.Notifications.Topic)
}

func provideNotificationService(
	repository notificationService.Repository,
	publisher notificationService.Publisher,
	txManager notificationService.TxManager,
	cfg *config.Config,
) *notificationService.Service {
	return notificationService.New(repository, publisher, txManager, cfg.Notifications.Enabled)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return httpclient.New(cfg.OrderAPI.Timeout)
}

func provideOrderGateway(log logger.Logger, client *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(log, client, cfg.OrderAPI.BaseURL)
}

func provideSession() *session.Session {
	return session.New()
}

func provideConsumerFactory(log logger.Logger, cfg *config.Config) *orderevents.SaramaFactory {
	return orderevents.NewSaramaFactory(log, &cfg.Kafka)
}

func provideEventChannel(log logger.Logger, factory orderevents.ConsumerFactory, cfg *config.Config) *orderevents.Channel {
	return orderevents.New(
		log.With(logger.NewField("component", "order_events")),
		factory,
		cfg.Kafka.ConsumerGroupPrefix,
		cfg.Kafka.Handlers.OrderChanged.ProcessTimeout,
	)
}

func provideOrderSync(
	log logger.Logger,
	api ordersync.OrderAPI,
	auth ordersync.AuthProvider,
	events ordersync.EventChannel,
	notifier ordersync.Notifier,
) *ordersync.Controller {
	return ordersync.New(log, api, auth, events, notifier)
}

func provideDashboard(auth dashboardService.AuthProvider, api dashboardService.DashboardAPI) *dashboardService.Service {
	return dashboardService.New(auth, api)
}

func providePaymentService(auth paymentService.AuthProvider, api paymentService.PaymentAPI) *paymentService.Service {
	return paymentService.New(auth, api)
}

func provideUserService(auth userService.AuthProvider, api userService.UserAPI) *userService.Service {
	return userService.New(auth, api)
}

func provideInvoiceService(auth invoiceService.AuthProvider, api invoiceService.InvoiceAPI) *invoiceService.Service {
	return invoiceService.New(auth, api)
}

func provideResyncInterval(cfg *config.Config) ResyncInterval {
	return ResyncInterval(cfg.Tasks.OrdersResyncInterval)
}

func provideOrdersResyncTask(
	log logger.Logger,
	service orders_resync.Service,
	interval ResyncInterval,
) *orders_resync.OrdersResync {
	return orders_resync.NewOrdersResync(log, service, time.Duration(interval))
}

func provideTaskList(
	ordersResyncTask *orders_resync.OrdersResync,
) []background.Task {
	return []background.Task{
		ordersResyncTask,
	}
}

// Прогрев запускает ресинк сразу после подписки на события: он закрывает окно между
// первичной загрузкой и присоединением консьюмера к топику.
func provideBackgroundWorkers(log logger.Logger, tasks []background.Task) *background.Worker {
	return background.New(log.With(logger.NewField("component", "background")), tasks, background.WithWarmup())
}

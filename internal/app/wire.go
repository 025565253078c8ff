//go:build wireinject
// +build wireinject

package app

import (
	orderGateway "console/internal/gateway/rest/order"
	notificationPublisher "console/internal/gateway/kafka/notifications"
	"console/internal/gateway/kafka/orderevents"
	"console/internal/handlers/tasks/orders_resync"
	"console/internal/pkg/config"
	notificationRepo "console/internal/repository/notification"
	dashboardService "console/internal/service/dashboard"
	invoiceService "console/internal/service/invoice"
	notificationService "console/internal/service/notification"
	"console/internal/service/ordersync"
	paymentService "console/internal/service/payment"
	"console/internal/service/session"
	userService "console/internal/service/user"
	"console/pkg/logger"
	"console/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication собирает консоль (cmd/console).
// producer может быть nil, если уведомления выключены.
func InitializeApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideNotificationRepository,
		provideNotificationPublisher,
		provideNotificationService,

		provideHTTPClient,
		provideOrderGateway,
		provideSession,
		provideConsumerFactory,
		provideEventChannel,
		provideOrderSync,
		provideDashboard,
		providePaymentService,
		provideUserService,
		provideInvoiceService,

		provideResyncInterval,
		provideOrdersResyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(OrderSync), new(*ordersync.Controller)),
		wire.Bind(new(ServiceOrders), new(*ordersync.Controller)),
		wire.Bind(new(ServiceSession), new(*session.Session)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Service)),
		wire.Bind(new(ServiceNotifications), new(*notificationService.Service)),
		wire.Bind(new(ServicePayments), new(*paymentService.Service)),
		wire.Bind(new(ServiceUsers), new(*userService.Service)),
		wire.Bind(new(ServiceInvoices), new(*invoiceService.Service)),

		wire.Bind(new(ordersync.OrderAPI), new(*orderGateway.OrderGateway)),
		wire.Bind(new(ordersync.AuthProvider), new(*session.Session)),
		wire.Bind(new(ordersync.EventChannel), new(*orderevents.Channel)),
		wire.Bind(new(ordersync.Notifier), new(*notificationService.Service)),
		wire.Bind(new(orderevents.ConsumerFactory), new(*orderevents.SaramaFactory)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.Publisher), new(*notificationPublisher.Publisher)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dashboardService.AuthProvider), new(*session.Session)),
		wire.Bind(new(dashboardService.DashboardAPI), new(*orderGateway.OrderGateway)),
		wire.Bind(new(paymentService.AuthProvider), new(*session.Session)),
		wire.Bind(new(paymentService.PaymentAPI), new(*orderGateway.OrderGateway)),
		wire.Bind(new(userService.AuthProvider), new(*session.Session)),
		wire.Bind(new(userService.UserAPI), new(*orderGateway.OrderGateway)),
		wire.Bind(new(invoiceService.AuthProvider), new(*session.Session)),
		wire.Bind(new(invoiceService.InvoiceAPI), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orders_resync.Service), new(*ordersync.Controller)),
	)
	return &Application{}, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "console/internal/app"
	"console/internal/entities"
	"console/internal/handlers/rest/dashboard_get"
	"console/internal/handlers/rest/healthcheck_head"
	"console/internal/handlers/rest/notifications_get"
	"console/internal/handlers/rest/order_get"
	"console/internal/handlers/rest/order_invoice_get"
	"console/internal/handlers/rest/orders_get"
	"console/internal/handlers/rest/orders_refresh_post"
	"console/internal/handlers/rest/payment_get"
	"console/internal/handlers/rest/payments_get"
	"console/internal/handlers/rest/ping_get"
	"console/internal/handlers/rest/session_delete"
	"console/internal/handlers/rest/session_put"
	"console/internal/handlers/rest/users_get"
	"console/internal/pkg/config"
	"console/internal/pkg/dotenv"
	"console/internal/pkg/kafka"
	metrics_system "console/internal/pkg/metrics"
	"console/internal/pkg/middlewares/graceful_shutdown"
	"console/internal/pkg/middlewares/metrics"
	"console/internal/pkg/middlewares/rate_limiter"
	"console/internal/pkg/middlewares/timeout"
	"console/internal/pkg/postgres"
	"console/pkg/logger"
	"console/pkg/logger/zap_adapter"
	"console/pkg/token_bucket"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env читается до логгера: из него берётся LOG_LEVEL
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "order-console"))

	mainLog.Info("starting order console")

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	var producer sarama.SyncProducer
	if cfg.Notifications.Enabled {
		producer, err = kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}()
	} else {
		runLog.Warn("notifications disabled, new orders will not be announced")
	}

	businessApp, err := application.InitializeApplication(log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	metrics_system.StartSystemMetricsCollector(ongoingCtx)

	if cfg.Auth.AccessToken != "" {
		if err := businessApp.ServiceSession.Set(cfg.Auth.AccessToken, cfg.Auth.ExpiresAt); err != nil {
			runLog.Warn("initial session rejected", logger.NewField("error", err))
		}
	}

	// первичная загрузка не критична: без сессии список заполнится после PUT /session
	if err := businessApp.OrderSync.Initialize(ctx, entities.OrderFilter{}); err != nil {
		runLog.Warn("initial order load failed", logger.NewField("error", err))
	}

	dispose, err := businessApp.OrderSync.SubscribeToChanges(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to order changes: %w", err)
	}
	defer dispose()

	if err := businessApp.BackgroundWorkers.Start(ongoingCtx); err != nil {
		return fmt.Errorf("background workers: %w", err)
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	// события больше не принимаем, незавершённые сверки отбросят результат
	dispose()
	runLog.Info("order sync retired")

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err := businessApp.BackgroundWorkers.Wait(); err != nil {
		runLog.Error("background workers stopped with error", logger.NewField("error", err))
	}

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/orders", orders_get.New(log, app.ServiceOrders)).Methods(http.MethodGet)
	router.Handle("/orders/refresh", orders_refresh_post.New(log, app.ServiceOrders)).Methods(http.MethodPost)
	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrders)).Methods(http.MethodGet)
	router.Handle("/orders/{code}/invoice", order_invoice_get.New(log, app.ServiceInvoices)).Methods(http.MethodGet)

	router.Handle("/dashboard", dashboard_get.New(log, app.ServiceDashboard)).Methods(http.MethodGet)
	router.Handle("/notifications", notifications_get.New(log, app.ServiceNotifications)).Methods(http.MethodGet)
	router.Handle("/payments", payments_get.New(log, app.ServicePayments)).Methods(http.MethodGet)
	router.Handle("/payments/{id}", payment_get.New(log, app.ServicePayments)).Methods(http.MethodGet)
	router.Handle("/users", users_get.New(log, app.ServiceUsers)).Methods(http.MethodGet)

	router.Handle("/session", session_put.New(log, app.ServiceSession, app.ServiceOrders)).Methods(http.MethodPut)
	router.Handle("/session", session_delete.New(log, app.ServiceSession)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

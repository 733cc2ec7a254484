package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dinner-service/internal/app"
	"dinner-service/internal/gateway/rabbitmq/notification"
	"dinner-service/internal/handlers/rest/change_request_post"
	"dinner-service/internal/handlers/rest/change_requests_get"
	"dinner-service/internal/handlers/rest/healthcheck_head"
	"dinner-service/internal/handlers/rest/inventory_availability_get"
	"dinner-service/internal/handlers/rest/inventory_get"
	"dinner-service/internal/handlers/rest/inventory_order_post"
	"dinner-service/internal/handlers/rest/inventory_receive_post"
	"dinner-service/internal/handlers/rest/inventory_reservation_post"
	"dinner-service/internal/handlers/rest/inventory_restock_post"
	"dinner-service/internal/handlers/rest/order_cancel_post"
	"dinner-service/internal/handlers/rest/order_cancel_quote_get"
	"dinner-service/internal/handlers/rest/order_eligibility_get"
	"dinner-service/internal/handlers/rest/order_modification_get"
	"dinner-service/internal/handlers/rest/orders_get"
	"dinner-service/internal/handlers/rest/ping_get"
	"dinner-service/internal/handlers/rest/voice_confirm_post"
	"dinner-service/internal/handlers/rest/voice_start_post"
	"dinner-service/internal/handlers/rest/voice_state_post"
	"dinner-service/internal/handlers/rest/voice_summary_get"
	"dinner-service/internal/pkg/config"
	"dinner-service/internal/pkg/dotenv"
	metrics_system "dinner-service/internal/pkg/metrics"
	"dinner-service/internal/pkg/middlewares/admin_only"
	"dinner-service/internal/pkg/middlewares/auth"
	"dinner-service/internal/pkg/middlewares/graceful_shutdown"
	"dinner-service/internal/pkg/middlewares/metrics"
	"dinner-service/internal/pkg/middlewares/rate_limiter"
	"dinner-service/internal/pkg/middlewares/timeout"
	"dinner-service/internal/pkg/postgres"
	"dinner-service/internal/pkg/rabbitmq"
	orderService "dinner-service/internal/service/order"
	"dinner-service/pkg/logger"
	"dinner-service/pkg/logger/zap_adapter"
	"dinner-service/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "dinner-service"

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("service", serviceName))

	mainLog.Info("starting dinner-service application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
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

	if cfg.Database.MigrationsEnabled {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	var notifier orderService.Notifier = notification.Noop{}
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(ctx, log, cfg.RabbitMQ.URL)
		if err != nil {
			return fmt.Errorf("rabbitmq: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				runLog.Error("failed to close RabbitMQ connection",
					logger.NewField("error", err),
				)
			}
		}()
		notifier = notification.New(conn, cfg.RabbitMQ.Exchange)
	} else {
		runLog.Warn("RABBITMQ_URL is empty, cancellation notifications are disabled")
	}

	// фоновые задачи живут на ctx и останавливаются вместе с сигналом
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, notifier, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, businessApp),
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
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

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
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.Database)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, serviceName)).Methods("GET")

	// всё ниже требует Bearer токен, сам токен проверяет dinner API
	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware())

	api.Handle("/orders", orders_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{id}/eligibility", order_eligibility_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{id}/cancel-quote", order_cancel_quote_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{id}/cancel", order_cancel_post.New(log, app.ServiceOrders)).Methods("POST")
	api.Handle("/orders/{id}/modification", order_modification_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{id}/change-requests", change_request_post.New(log, app.ServiceOrders)).Methods("POST")
	api.Handle("/orders/{id}/change-requests", change_requests_get.New(log, app.ServiceOrders)).Methods("GET")

	// статические пути раньше /inventory/{id}
	api.Handle("/inventory", inventory_get.New(log, app.ServiceInventory)).Methods("GET")
	api.Handle("/inventory/check-availability", inventory_availability_get.New(log, app.ServiceInventory, app.Location)).Methods("GET")
	api.Handle("/inventory/reservations", inventory_reservation_post.New(log, app.ServiceInventory, app.Location)).Methods("POST")

	admin := api.PathPrefix("/inventory/{id}").Subrouter()
	admin.Use(admin_only.Middleware(log, app.Profiles))
	admin.Handle("/order", inventory_order_post.New(log, app.ServiceInventory)).Methods("POST")
	admin.Handle("/receive", inventory_receive_post.New(log, app.ServiceInventory)).Methods("POST")
	admin.Handle("/restock", inventory_restock_post.New(log, app.ServiceInventory)).Methods("POST")

	api.Handle("/voice-orders/start", voice_start_post.New(log, app.ServiceVoice)).Methods("POST")
	api.Handle("/voice-orders/{sessionId}/state", voice_state_post.New(log, app.ServiceVoice)).Methods("POST")
	api.Handle("/voice-orders/{sessionId}/summary", voice_summary_get.New(log, app.ServiceVoice)).Methods("GET")
	api.Handle("/voice-orders/{sessionId}/confirm", voice_confirm_post.New(log, app.ServiceVoice)).Methods("POST")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.Database)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

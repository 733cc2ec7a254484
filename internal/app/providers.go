package app

import (
	"context"
	"net/http"
	"time"

	"dinner-service/internal/gateway/rest/dinner"
	"dinner-service/internal/handlers/rest/change_request_post"
	"dinner-service/internal/handlers/rest/change_requests_get"
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
	"dinner-service/internal/handlers/rest/voice_confirm_post"
	"dinner-service/internal/handlers/rest/voice_start_post"
	"dinner-service/internal/handlers/rest/voice_state_post"
	"dinner-service/internal/handlers/rest/voice_summary_get"
	"dinner-service/internal/handlers/tasks/reservation_cleanup"
	"dinner-service/internal/handlers/tasks/voice_session_cleanup"
	"dinner-service/internal/pkg/config"
	"dinner-service/internal/pkg/factory/inventory_window"
	"dinner-service/internal/pkg/factory/order_handle"
	"dinner-service/internal/pkg/middlewares/admin_only"
	inventoryRepo "dinner-service/internal/repository/inventory"
	"dinner-service/internal/service/eligibility"
	inventoryService "dinner-service/internal/service/inventory"
	orderService "dinner-service/internal/service/order"
	voiceService "dinner-service/internal/service/voice"
	"dinner-service/pkg/background"
	"dinner-service/pkg/logger"
	"dinner-service/pkg/querier"
	"dinner-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReservationCleanupInterval  time.Duration
	VoiceSessionCleanupInterval time.Duration
)

type Application struct {
	ServiceOrders     ServiceOrders
	ServiceInventory  ServiceInventory
	ServiceVoice      ServiceVoice
	Profiles          admin_only.ProfileGateway
	Database          *querier.Querier
	Location          *time.Location
	BackgroundWorkers *background.Worker
}

type ServiceOrders interface {
	orders_get.Service
	order_eligibility_get.Service
	order_cancel_quote_get.Service
	order_cancel_post.Service
	order_modification_get.Service
	change_request_post.Service
	change_requests_get.Service
}

type ServiceInventory interface {
	inventory_get.Service
	inventory_order_post.Service
	inventory_receive_post.Service
	inventory_restock_post.Service
	inventory_availability_get.Service
	inventory_reservation_post.Service
}

type ServiceVoice interface {
	voice_start_post.Service
	voice_state_post.Service
	voice_summary_get.Service
	voice_confirm_post.Service
}

var inventorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideInventoryRepository,
	provideWindowFactory,
	provideStatusHandlerFactory,
	provideInventoryService,

	wire.Bind(new(inventoryService.Repository), new(*inventoryRepo.Repository)),
	wire.Bind(new(inventoryService.WindowFactory), new(*inventory_window.WindowFactory)),
	wire.Bind(new(inventoryService.TxManager), new(*tx.Manager)),
	wire.Bind(new(inventoryService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
	wire.Bind(new(order_handle.ReservationStore), new(*inventoryRepo.Repository)),
)

type KafkaWorkerApp struct {
	InventoryService *inventoryService.Service
	Database         *querier.Querier
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideInventoryRepository(querier *querier.Querier) *inventoryRepo.Repository {
	return inventoryRepo.New(querier)
}

func provideWindowFactory(location *time.Location) *inventory_window.WindowFactory {
	return inventory_window.New(location)
}

func provideStatusHandlerFactory(store order_handle.ReservationStore) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(store)
}

func provideInventoryService(
	repository inventoryService.Repository,
	windowFactory inventoryService.WindowFactory,
	txManager inventoryService.TxManager,
	statusFactory inventoryService.HandlerFactory,
) *inventoryService.Service {
	return inventoryService.New(repository, windowFactory, txManager, statusFactory)
}

// provideEligibilityPolicy нулевые значения конфига оставляют дефолты движка
func provideEligibilityPolicy(cfg *config.Config) eligibility.Policy {
	policy := eligibility.DefaultPolicy()

	if cfg.Policy.Location != nil {
		policy.Location = cfg.Policy.Location
	}
	if cfg.Policy.ChangeCutoff > 0 {
		policy.ChangeCutoff = cfg.Policy.ChangeCutoff
	}
	if cfg.Policy.SameDayChangeFee > 0 {
		policy.SameDayChangeFee = cfg.Policy.SameDayChangeFee
	}
	if cfg.Policy.CancelFee > 0 {
		policy.CancelFee = cfg.Policy.CancelFee
	}
	if cfg.Policy.FreeCancelDays > 0 {
		policy.FreeCancelDays = cfg.Policy.FreeCancelDays
	}

	return policy
}

func provideLocation(policy eligibility.Policy) *time.Location {
	return policy.Location
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.DinnerAPI.Timeout}
}

func provideDinnerGateway(cfg *config.Config, client *http.Client, location *time.Location) *dinner.DinnerGateway {
	return dinner.New(cfg.DinnerAPI.BaseURL, client, location)
}

func provideOrderService(
	gateway orderService.DinnerGateway,
	engine orderService.Engine,
	notifier orderService.Notifier,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(gateway, engine, notifier, log.With(logger.NewField("service", "order")))
}

func provideVoiceService(
	gateway voiceService.DinnerGateway,
	store voiceService.SessionStore,
	catalog *voiceService.Catalog,
	location *time.Location,
	cfg *config.Config,
) *voiceService.Service {
	return voiceService.New(gateway, store, catalog, location, cfg.Voice.SessionTTL)
}

func provideReservationCleanupInterval(cfg *config.Config) ReservationCleanupInterval {
	return ReservationCleanupInterval(cfg.Tasks.ReservationCleanupInterval)
}

func provideVoiceSessionCleanupInterval(cfg *config.Config) VoiceSessionCleanupInterval {
	return VoiceSessionCleanupInterval(cfg.Tasks.VoiceSessionCleanupInterval)
}

func provideReservationCleanupTask(
	log logger.Logger,
	service reservation_cleanup.Service,
	interval ReservationCleanupInterval,
) *reservation_cleanup.ReservationCleanup {
	return reservation_cleanup.NewReservationCleanup(log, service, time.Duration(interval))
}

func provideVoiceSessionCleanupTask(
	log logger.Logger,
	service voice_session_cleanup.Service,
	sessions voice_session_cleanup.SessionCounter,
	interval VoiceSessionCleanupInterval,
) *voice_session_cleanup.VoiceSessionCleanup {
	return voice_session_cleanup.NewVoiceSessionCleanup(log, service, sessions, time.Duration(interval))
}

func provideTaskList(
	reservationCleanupTask *reservation_cleanup.ReservationCleanup,
	voiceSessionCleanupTask *voice_session_cleanup.VoiceSessionCleanup,
) []background.Task {
	return []background.Task{
		reservationCleanupTask,
		voiceSessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

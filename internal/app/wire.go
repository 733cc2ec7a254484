//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dinner-service/internal/gateway/rest/dinner"
	"dinner-service/internal/handlers/tasks/reservation_cleanup"
	"dinner-service/internal/handlers/tasks/voice_session_cleanup"
	"dinner-service/internal/pkg/config"
	"dinner-service/internal/pkg/middlewares/admin_only"
	"dinner-service/internal/repository/voice_session"
	"dinner-service/internal/service/eligibility"
	inventoryService "dinner-service/internal/service/inventory"
	orderService "dinner-service/internal/service/order"
	voiceService "dinner-service/internal/service/voice"
	"dinner-service/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier orderService.Notifier,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		inventorySet,

		provideEligibilityPolicy,
		provideLocation,
		eligibility.New,

		provideHTTPClient,
		provideDinnerGateway,

		provideOrderService,

		voiceService.NewCatalog,
		voice_session.New,
		provideVoiceService,

		provideReservationCleanupInterval,
		provideVoiceSessionCleanupInterval,
		provideReservationCleanupTask,
		provideVoiceSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrders), new(*orderService.Service)),
		wire.Bind(new(ServiceInventory), new(*inventoryService.Service)),
		wire.Bind(new(ServiceVoice), new(*voiceService.Service)),
		wire.Bind(new(admin_only.ProfileGateway), new(*dinner.DinnerGateway)),

		wire.Bind(new(orderService.DinnerGateway), new(*dinner.DinnerGateway)),
		wire.Bind(new(orderService.Engine), new(*eligibility.Engine)),
		wire.Bind(new(voiceService.DinnerGateway), new(*dinner.DinnerGateway)),
		wire.Bind(new(voiceService.SessionStore), new(*voice_session.Store)),

		wire.Bind(new(reservation_cleanup.Service), new(*inventoryService.Service)),
		wire.Bind(new(voice_session_cleanup.Service), new(*voiceService.Service)),
		wire.Bind(new(voice_session_cleanup.SessionCounter), new(*voice_session.Store)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		inventorySet,

		provideEligibilityPolicy,
		provideLocation,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}


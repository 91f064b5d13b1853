//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	directionsGateway "service/internal/gateway/directions"
	pushGateway "service/internal/gateway/push"
	"service/internal/handlers/rest/settlement_detail_get"
	"service/internal/handlers/rest/settlement_list_get"
	"service/internal/handlers/rest/settlement_summary_get"
	"service/internal/handlers/rest/shipment_accept_detail_get"
	"service/internal/handlers/rest/shipment_accept_post"
	"service/internal/handlers/rest/shipment_complete_post"
	"service/internal/handlers/rest/shipment_get"
	"service/internal/handlers/rest/shipment_post"
	"service/internal/handlers/rest/shipment_start_post"
	"service/internal/handlers/rest/shipments_my_get"
	"service/internal/handlers/rest/shipments_unassigned_get"
	"service/internal/handlers/tasks/notification_cleanup"
	"service/internal/pkg/config"
	pricingFactory "service/internal/pkg/factory/pricing"

	locationlogRepo "service/internal/repository/locationlog"
	notificationRepo "service/internal/repository/notification"
	partyRepo "service/internal/repository/party"
	shipmentRepo "service/internal/repository/shipment"
	etaService "service/internal/service/eta"
	locationService "service/internal/service/location"
	notifyService "service/internal/service/notify"
	settlementService "service/internal/service/settlement"
	shipmentService "service/internal/service/shipment"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval       time.Duration
	NotificationRetention time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceEta        ServiceEta
	ServiceSettlement ServiceSettlement
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_accept_post.Service
	shipment_start_post.Service
	shipment_complete_post.Service
	shipments_unassigned_get.Service
	shipments_my_get.Service
}

type ServiceEta interface {
	shipment_get.Service
	shipment_accept_detail_get.Service
}

type ServiceSettlement interface {
	settlement_summary_get.Service
	settlement_list_get.Service
	settlement_detail_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideNotificationRetention,

		provideShipmentRepository,
		providePartyRepository,
		provideNotificationRepository,

		provideDirectionsGateway,
		providePushGateway,
		providePricingEngine,

		provideServiceNotify,
		provideServiceShipment,
		provideServiceEta,
		provideServiceSettlement,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceEta), new(*etaService.Eta)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Settlement)),

		wire.Bind(new(notification_cleanup.Service), new(*notifyService.Notify)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	LocationService *locationService.Location
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-location-updates)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideLocationLogRepository,

		provideServiceLocation,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func providePartyRepository(querier *querier.Querier) *partyRepo.Repository {
	return partyRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideLocationLogRepository(querier *querier.Querier) *locationlogRepo.Repository {
	return locationlogRepo.New(querier)
}

func provideDirectionsGateway(cfg *config.Config) *directionsGateway.DirectionsGateway {
	return directionsGateway.New(
		directionsGateway.Config{
			BaseURL:      cfg.Routing.BaseURL,
			ClientID:     cfg.Routing.ClientID,
			ClientSecret: cfg.Routing.ClientSecret,
		},
		&http.Client{Timeout: cfg.Routing.RequestTimeout},
	)
}

func providePushGateway(log logger.Logger) *pushGateway.PushGateway {
	return pushGateway.New(log)
}

func providePricingEngine(cfg *config.Config) *pricingFactory.Engine {
	return pricingFactory.New(cfg.Pricing.FeeRate)
}

func provideServiceNotify(
	shipmentRepository *shipmentRepo.Repository,
	notificationRepository *notificationRepo.Repository,
	sender *pushGateway.PushGateway,
	log logger.Logger,
) *notifyService.Notify {
	return notifyService.New(shipmentRepository, notificationRepository, sender, log)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	partyRepository *partyRepo.Repository,
	routing *directionsGateway.DirectionsGateway,
	pricing *pricingFactory.Engine,
	notifier *notifyService.Notify,
	txManager *tx.Manager,
	log logger.Logger,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		partyRepository,
		routing,
		pricing,
		notifier,
		txManager,
		log,
	)
}

func provideServiceEta(
	repository *shipmentRepo.Repository,
	partyRepository *partyRepo.Repository,
	routing *directionsGateway.DirectionsGateway,
	log logger.Logger,
) *etaService.Eta {
	return etaService.New(repository, partyRepository, routing, log)
}

func provideServiceSettlement(
	repository *shipmentRepo.Repository,
	partyRepository *partyRepo.Repository,
) *settlementService.Settlement {
	return settlementService.New(repository, partyRepository)
}

func provideServiceLocation(
	repository *locationlogRepo.Repository,
	shipmentRepository *shipmentRepo.Repository,
	txManager *tx.Manager,
) *locationService.Location {
	return locationService.New(repository, shipmentRepository, txManager)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.NotificationCleanupInterval)
}

func provideNotificationRetention(cfg *config.Config) NotificationRetention {
	return NotificationRetention(cfg.Tasks.NotificationRetention)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notifyService notification_cleanup.Service,
	interval CleanupInterval,
	retention NotificationRetention,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(log, notifyService, time.Duration(interval), time.Duration(retention))
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

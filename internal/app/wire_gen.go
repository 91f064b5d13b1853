// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
	"service/internal/gateway/directions"
	"service/internal/gateway/push"
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
	"service/internal/pkg/factory/pricing"
	"service/internal/repository/locationlog"
	"service/internal/repository/notification"
	"service/internal/repository/party"
	"service/internal/repository/shipment"
	"service/internal/service/eta"
	"service/internal/service/location"
	"service/internal/service/notify"
	"service/internal/service/settlement"
	shipment2 "service/internal/service/shipment"
	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideShipmentRepository(querier)
	partyRepository := providePartyRepository(querier)
	directionsGateway := provideDirectionsGateway(cfg)
	engine := providePricingEngine(cfg)
	notificationRepository := provideNotificationRepository(querier)
	pushGateway := providePushGateway(log)
	notify := provideServiceNotify(repository, notificationRepository, pushGateway, log)
	manager := provideTxManager(pool)
	shipment := provideServiceShipment(repository, partyRepository, directionsGateway, engine, notify, manager, log)
	eta := provideServiceEta(repository, partyRepository, directionsGateway, log)
	settlement := provideServiceSettlement(repository, partyRepository)
	cleanupInterval := provideCleanupInterval(cfg)
	notificationRetention := provideNotificationRetention(cfg)
	notificationCleanup := provideNotificationCleanupTask(log, notify, cleanupInterval, notificationRetention)
	v := provideTaskList(notificationCleanup)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceShipment:   shipment,
		ServiceEta:        eta,
		ServiceSettlement: settlement,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-location-updates)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideLocationLogRepository(querier)
	shipmentRepository := provideShipmentRepository(querier)
	manager := provideTxManager(pool)
	location := provideServiceLocation(repository, shipmentRepository, manager)
	kafkaWorkerApp := &KafkaWorkerApp{
		LocationService: location,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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

type KafkaWorkerApp struct {
	LocationService *location.Location
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier2 *querier.Querier) *shipment.Repository {
	return shipment.New(querier2)
}

func providePartyRepository(querier2 *querier.Querier) *party.Repository {
	return party.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification.Repository {
	return notification.New(querier2)
}

func provideLocationLogRepository(querier2 *querier.Querier) *locationlog.Repository {
	return locationlog.New(querier2)
}

func provideDirectionsGateway(cfg *config.Config) *directions.DirectionsGateway {
	return directions.New(directions.Config{
		BaseURL:      cfg.Routing.BaseURL,
		ClientID:     cfg.Routing.ClientID,
		ClientSecret: cfg.Routing.ClientSecret,
	}, &http.Client{Timeout: cfg.Routing.RequestTimeout},
	)
}

func providePushGateway(log logger.Logger) *push.PushGateway {
	return push.New(log)
}

func providePricingEngine(cfg *config.Config) *pricing.Engine {
	return pricing.New(cfg.Pricing.FeeRate)
}

func provideServiceNotify(
	shipmentRepository *shipment.Repository,
	notificationRepository *notification.Repository,
	sender *push.PushGateway,
	log logger.Logger,
) *notify.Notify {
	return notify.New(shipmentRepository, notificationRepository, sender, log)
}

func provideServiceShipment(
	repository *shipment.Repository,
	partyRepository *party.Repository,
	routing *directions.DirectionsGateway, pricing2 *pricing.Engine,
	notifier *notify.Notify,
	txManager *tx.Manager,
	log logger.Logger,
) *shipment2.Shipment {
	return shipment2.New(
		repository,
		partyRepository,
		routing, pricing2, notifier,
		txManager,
		log,
	)
}

func provideServiceEta(
	repository *shipment.Repository,
	partyRepository *party.Repository,
	routing *directions.DirectionsGateway,
	log logger.Logger,
) *eta.Eta {
	return eta.New(repository, partyRepository, routing, log)
}

func provideServiceSettlement(
	repository *shipment.Repository,
	partyRepository *party.Repository,
) *settlement.Settlement {
	return settlement.New(repository, partyRepository)
}

func provideServiceLocation(
	repository *locationlog.Repository,
	shipmentRepository *shipment.Repository,
	txManager *tx.Manager,
) *location.Location {
	return location.New(repository, shipmentRepository, txManager)
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

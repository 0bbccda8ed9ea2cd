//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	orderGateway "service/internal/gateway/kafka/order_placed"
	order_cancel_post "service/internal/handlers/rest/order_cancel_post"
	order_confirm_post "service/internal/handlers/rest/order_confirm_post"
	order_get "service/internal/handlers/rest/order_get"
	order_post "service/internal/handlers/rest/order_post"
	orders_get "service/internal/handlers/rest/orders_get"
	"service/internal/handlers/tasks/pending_orders"
	"service/internal/pkg/config"

	orderRepo "service/internal/repository/order"
	orderService "service/internal/service/order"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReportInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_post.Service
	order_confirm_post.Service
	order_cancel_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReportInterval,

		provideOrderRepository,
		provideOrderGateway,
		provideOrderService,

		providePendingOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*orderGateway.Gateway)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pending_orders.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOrderGateway(producer sarama.SyncProducer, cfg *config.Config) *orderGateway.Gateway {
	return orderGateway.New(producer, cfg.Kafka.Topic)
}

func provideOrderService(
	log logger.Logger,
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(log, repository, publisher, txManager)
}

func provideReportInterval(cfg *config.Config) ReportInterval {
	return ReportInterval(cfg.Tasks.PendingOrdersReportInterval)
}

func providePendingOrdersTask(
	log logger.Logger,
	orderService pending_orders.Service,
	interval ReportInterval,
) *pending_orders.PendingOrders {
	return pending_orders.NewPendingOrders(log, orderService, time.Duration(interval))
}

func provideTaskList(
	pendingOrdersTask *pending_orders.PendingOrders,
) []background.Task {
	return []background.Task{
		pendingOrdersTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

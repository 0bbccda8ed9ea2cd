//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatusIfPending(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error)
	CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, orderEntity *entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

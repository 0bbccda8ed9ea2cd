package order

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/pkg/logger"
)

type Service struct {
	log        serviceLogger
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, publisher EventPublisher, txManager TxManager) *Service {
	serviceLog := log.With()

	return &Service{
		log:        serviceLog,
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// CreateOrder сохраняет новый заказ в статусе PENDING и публикует событие order.placed.
// Запись в БД идет в транзакции, публикация - после коммита: при падении брокера
// заказ остается сохраненным и возвращается вызывающему без компенсации.
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if !hasRequiredCreateFields(orderModify) {
		return nil, ErrMissingRequiredFields
	}

	// id/status/created_at от вызывающего игнорируются
	status := entities.OrderPending
	orderModify.ID = nil
	orderModify.Status = &status
	orderModify.CreatedAt = nil
	orderModify.CancellationReason = nil

	var orderEntity *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		orderEntity = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// событие строится по сохраненной записи, чтобы нести присвоенный id
	err = s.publisher.PublishOrderPlaced(ctx, orderEntity)
	if err != nil {
		s.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("error", err),
		).Error("order persisted but order.placed publish failed")
	}

	return orderEntity, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return orders, nil
}

// ConfirmOrder переводит заказ PENDING -> CONFIRMED.
// Для заказа в терминальном статусе операция - no-op без ошибки.
func (s *Service) ConfirmOrder(ctx context.Context, id int64) error {
	if !isValidOrderID(id) {
		return ErrInvalidOrderID
	}

	status := entities.OrderConfirmed
	orderModify := entities.OrderModify{
		ID:     &id,
		Status: &status,
	}

	return s.transitionFromPending(ctx, orderModify, "confirm")
}

// CancelOrder переводит заказ PENDING -> CANCELLED и записывает причину.
// No-op путь причину не перезаписывает.
func (s *Service) CancelOrder(ctx context.Context, id int64, reason string) error {
	if !isValidOrderID(id) {
		return ErrInvalidOrderID
	}

	status := entities.OrderCancelled
	orderModify := entities.OrderModify{
		ID:                 &id,
		Status:             &status,
		CancellationReason: &reason,
	}

	return s.transitionFromPending(ctx, orderModify, "cancel")
}

// transitionFromPending выполняет условный UPDATE ... WHERE status = 'PENDING'.
// Ноль затронутых строк означает либо отсутствие заказа (ErrOrderNotFound),
// либо заказ уже в терминальном статусе - тогда молча выходим.
func (s *Service) transitionFromPending(ctx context.Context, orderModify entities.OrderModify, operation string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		rowsAffected, err := s.repository.UpdateStatusIfPending(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("%s order: %w", operation, err)
		}

		if rowsAffected == 0 {
			orderEntity, err := s.repository.GetByID(ctx, *orderModify.ID)
			if err != nil {
				return fmt.Errorf("%s order: %w", operation, err)
			}

			s.log.With(
				logger.NewField("order", orderEntity.ID),
				logger.NewField("operation", operation),
				logger.NewField("status", orderEntity.Status.String()),
			).Warn("order is not PENDING, skipping transition")
		}

		return nil
	})
}

// CountPendingOrders отдает размер бэклога PENDING для фоновой метрики.
func (s *Service) CountPendingOrders(ctx context.Context) (int64, error) {
	count, err := s.repository.CountByStatus(ctx, entities.OrderPending)
	if err != nil {
		return 0, fmt.Errorf("count pending orders: %w", err)
	}

	return count, nil
}

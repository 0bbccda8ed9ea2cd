package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"service/internal/entities"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (product_id, quantity, customer_name, customer_email, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, product_id, quantity, customer_name, customer_email, total_amount, status, cancellation_reason, created_at`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ProductID,
		orderModifyModel.Quantity,
		orderModifyModel.CustomerName,
		orderModifyModel.CustomerEmail,
		orderModifyModel.TotalAmount,
		orderModifyModel.Status,
	).Scan(
		&orderModel.ID,
		&orderModel.ProductID,
		&orderModel.Quantity,
		&orderModel.CustomerName,
		&orderModel.CustomerEmail,
		&orderModel.TotalAmount,
		&orderModel.Status,
		&orderModel.CancellationReason,
		&orderModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT id, product_id, quantity, customer_name, customer_email, total_amount, status, cancellation_reason, created_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.CustomerName,
			&orderModel.CustomerEmail,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.CancellationReason,
			&orderModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT id, product_id, quantity, customer_name, customer_email, total_amount, status, cancellation_reason, created_at
	FROM orders
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.CustomerName,
			&orderModel.CustomerEmail,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.CancellationReason,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatusIfPending выполняет переход статуса одним условным UPDATE.
// Возвращает число затронутых строк: 0 - заказа нет либо он уже не PENDING,
// решение об этом принимает сервисный слой.
func (r *Repository) UpdateStatusIfPending(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders").
		Set("status", orderModifyModel.Status)

	if orderModifyModel.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", orderModifyModel.CancellationReason)
	}

	builder = builder.Where(sq.Eq{
		"id":     orderModifyModel.ID,
		"status": entities.OrderPending.String(),
	})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return count, nil
}

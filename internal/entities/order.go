package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 int64
	ProductID          string
	Quantity           int32
	CustomerName       string
	CustomerEmail      string
	TotalAmount        decimal.Decimal
	Status             OrderStatusType
	CancellationReason *string
	CreatedAt          time.Time
}

type OrderStatusType string

// Статусы сохраняются в БД и уходят наружу в ответах как есть,
// поэтому значения зафиксированы в верхнем регистре.
const (
	OrderPending   OrderStatusType = "PENDING"
	OrderConfirmed OrderStatusType = "CONFIRMED"
	OrderCancelled OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID                 *int64
	ProductID          *string
	Quantity           *int32
	CustomerName       *string
	CustomerEmail      *string
	TotalAmount        *decimal.Decimal
	Status             *OrderStatusType
	CancellationReason *string
	CreatedAt          *time.Time
}

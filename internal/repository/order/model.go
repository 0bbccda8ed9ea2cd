package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                 int64
	ProductID          string
	Quantity           int32
	CustomerName       string
	CustomerEmail      string
	TotalAmount        decimal.Decimal
	Status             string
	CancellationReason *string
	CreatedAt          time.Time
}

type OrderModifyDB struct {
	ID                 *int64
	ProductID          *string
	Quantity           *int32
	CustomerName       *string
	CustomerEmail      *string
	TotalAmount        *decimal.Decimal
	Status             *string
	CancellationReason *string
	CreatedAt          *time.Time
}

package order_placed

import "github.com/shopspring/decimal"

// placedEvent повторяет контракт события order.placed со стороны producer.
type placedEvent struct {
	ID            int64           `json:"id"`
	ProductID     string          `json:"productId"`
	Quantity      int32           `json:"quantity"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

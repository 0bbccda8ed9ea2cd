package order_placed

import "github.com/shopspring/decimal"

// orderPlacedEvent - внешний контракт события, потребители ключуются по id.
// Имена полей стабильны, менять нельзя.
type orderPlacedEvent struct {
	ID            int64           `json:"id"`
	ProductID     string          `json:"productId"`
	Quantity      int32           `json:"quantity"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

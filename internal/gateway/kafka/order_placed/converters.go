package order_placed

import (
	"service/internal/entities"
)

// toEvent снимает денормализованный снапшот заказа:
// статус, причина и timestamp в событие не входят.
func toEvent(orderEntity *entities.Order) *orderPlacedEvent {
	if orderEntity == nil {
		return nil
	}

	return &orderPlacedEvent{
		ID:            orderEntity.ID,
		ProductID:     orderEntity.ProductID,
		Quantity:      orderEntity.Quantity,
		CustomerName:  orderEntity.CustomerName,
		CustomerEmail: orderEntity.CustomerEmail,
		TotalAmount:   orderEntity.TotalAmount,
	}
}

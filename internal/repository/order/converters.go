package order

import (
	"service/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                 o.ID,
		ProductID:          o.ProductID,
		Quantity:           o.Quantity,
		CustomerName:       o.CustomerName,
		CustomerEmail:      o.CustomerEmail,
		TotalAmount:        o.TotalAmount,
		Status:             entities.OrderStatusType(o.Status),
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.ProductID != nil {
		orderDB.ProductID = orderModify.ProductID
	}
	if orderModify.Quantity != nil {
		orderDB.Quantity = orderModify.Quantity
	}
	if orderModify.CustomerName != nil {
		orderDB.CustomerName = orderModify.CustomerName
	}
	if orderModify.CustomerEmail != nil {
		orderDB.CustomerEmail = orderModify.CustomerEmail
	}
	if orderModify.TotalAmount != nil {
		orderDB.TotalAmount = orderModify.TotalAmount
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.CancellationReason != nil {
		orderDB.CancellationReason = orderModify.CancellationReason
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

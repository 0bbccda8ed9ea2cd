package order

import "service/internal/entities"

func isValidOrderID(id int64) bool {
	return id > 0
}

// hasRequiredCreateFields проверяет только наличие полей.
// Позитивность quantity/totalAmount здесь сознательно не проверяется.
func hasRequiredCreateFields(orderModify entities.OrderModify) bool {
	return orderModify.ProductID != nil &&
		orderModify.Quantity != nil &&
		orderModify.CustomerName != nil &&
		orderModify.CustomerEmail != nil &&
		orderModify.TotalAmount != nil
}

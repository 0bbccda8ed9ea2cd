package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")

	// ErrOrderNotFound - единый вид "не найдено" для get/confirm/cancel.
	ErrOrderNotFound = errors.New("order not found")
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_placed_test
package order_placed

import (
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

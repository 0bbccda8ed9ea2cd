//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_placed_test
package order_placed

import (
	"github.com/IBM/sarama"
)

// producer - синхронный producer, sarama.SyncProducer его реализует.
type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

package pending_orders

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"service/pkg/logger"
)

var pendingBacklog = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "orders_pending_backlog",
		Help: "Number of orders currently in PENDING status",
	},
)

type Service interface {
	CountPendingOrders(ctx context.Context) (int64, error)
}

type PendingOrders struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPendingOrders(log logger.Logger, service Service, interval time.Duration) *PendingOrders {
	return &PendingOrders{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PendingOrders) TTL() time.Duration {
	return p.interval
}

func (p *PendingOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	count, err := p.service.CountPendingOrders(ctxWithTimeout)
	if err != nil {
		return err
	}

	pendingBacklog.Set(float64(count))
	p.log.With(
		logger.NewField("pending_orders", count),
	).Info("pending orders report")

	return nil
}

func (p *PendingOrders) Info() string {
	return "pending orders report"
}

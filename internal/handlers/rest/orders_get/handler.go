package orders_get

import (
	"encoding/json"
	"net/http"

	"service/internal/generated/dto"
	"service/internal/pkg/resterror"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderEntities, err := h.service.GetOrders(r.Context())
	if err != nil {
		resterror.WriteInternal(h.log, w, r)
		return
	}

	orderDTOs := make([]dto.OrderResponse, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i].Id = orderEntity.ID
		orderDTOs[i].ProductId = orderEntity.ProductID
		orderDTOs[i].Quantity = orderEntity.Quantity
		orderDTOs[i].CustomerName = orderEntity.CustomerName
		orderDTOs[i].CustomerEmail = orderEntity.CustomerEmail
		orderDTOs[i].TotalAmount = orderEntity.TotalAmount
		orderDTOs[i].Status = dto.OrderResponseStatus(orderEntity.Status)
		orderDTOs[i].CreatedAt = orderEntity.CreatedAt
		orderDTOs[i].CancellationReason = orderEntity.CancellationReason
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/pkg/resterror"
	"service/internal/service/order"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		resterror.WriteBadRequest(h.log, w, r, "invalid request body")
		return
	}

	// id/status/timestamp от клиента не принимаются
	orderModifyEntity := entities.OrderModify{
		ProductID:     &orderCreateDTO.ProductId,
		Quantity:      &orderCreateDTO.Quantity,
		CustomerName:  &orderCreateDTO.CustomerName,
		CustomerEmail: &orderCreateDTO.CustomerEmail,
		TotalAmount:   &orderCreateDTO.TotalAmount,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			resterror.WriteBadRequest(h.log, w, r, err.Error())
		default:
			resterror.WriteInternal(h.log, w, r)
		}
		return
	}

	response := dto.OrderResponse{
		Id:                 orderEntity.ID,
		ProductId:          orderEntity.ProductID,
		Quantity:           orderEntity.Quantity,
		CustomerName:       orderEntity.CustomerName,
		CustomerEmail:      orderEntity.CustomerEmail,
		TotalAmount:        orderEntity.TotalAmount,
		Status:             dto.OrderResponseStatus(orderEntity.Status),
		CreatedAt:          orderEntity.CreatedAt,
		CancellationReason: orderEntity.CancellationReason,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

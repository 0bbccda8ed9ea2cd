package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		resterror.WriteBadRequest(h.log, w, r, "invalid order id")
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			resterror.WriteNotFound(h.log, w, r, "order not found with id: "+idStr)
		case errors.Is(err, order.ErrInvalidOrderID):
			resterror.WriteBadRequest(h.log, w, r, "invalid order id")
		default:
			resterror.WriteInternal(h.log, w, r)
		}
		return
	}

	orderDTO := dto.OrderResponse{
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

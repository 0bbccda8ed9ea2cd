package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/pkg/resterror"
	"service/internal/service/order"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		resterror.WriteBadRequest(h.log, w, r, "invalid order id")
		return
	}

	var orderCancelDTO dto.OrderCancel
	err = json.NewDecoder(r.Body).Decode(&orderCancelDTO)
	if err != nil {
		resterror.WriteBadRequest(h.log, w, r, "invalid request body")
		return
	}

	err = h.service.CancelOrder(r.Context(), id, orderCancelDTO.Reason)
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

	w.WriteHeader(http.StatusNoContent)
}

package resterror

import (
	"encoding/json"
	"net/http"
	"time"

	"service/internal/generated/dto"
	"service/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Write отдает структурированное тело ошибки:
// {timestamp, status, error, message, path}.
func Write(log handlerLogger, w http.ResponseWriter, r *http.Request, status int, message string) {
	body := dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    int32(status),
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON error response",
			logger.NewField("error", err),
		)
	}
}

func WriteNotFound(log handlerLogger, w http.ResponseWriter, r *http.Request, message string) {
	Write(log, w, r, http.StatusNotFound, message)
}

func WriteBadRequest(log handlerLogger, w http.ResponseWriter, r *http.Request, message string) {
	Write(log, w, r, http.StatusBadRequest, message)
}

func WriteInternal(log handlerLogger, w http.ResponseWriter, r *http.Request) {
	Write(log, w, r, http.StatusInternalServerError, "internal server error")
}

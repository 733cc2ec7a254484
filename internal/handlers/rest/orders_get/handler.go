package orders_get

import (
	"net/http"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := session.FromContext(r.Context())
	if !ok {
		_ = httpjson.WriteError(w, http.StatusUnauthorized, "")
		return
	}

	list, err := h.service.ListOrders(r.Context(), current, time.Now())
	if err != nil {
		if status, message, remote := httpjson.RemoteStatus(err); remote {
			_ = httpjson.WriteError(w, status, message)
			return
		}
		h.log.Error("list orders", logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	if err := httpjson.Write(w, http.StatusOK, dto.FromOrderList(*list)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

package order_modification_get

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/internal/service/order"
	"dinner-service/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_modification_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := session.FromContext(r.Context())
	if !ok {
		_ = httpjson.WriteError(w, http.StatusUnauthorized, "")
		return
	}

	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 주문 번호입니다.")
		return
	}

	check, err := h.service.CheckModification(r.Context(), current, orderID, time.Now())
	if err != nil {
		if status, message, remote := httpjson.RemoteStatus(err); remote {
			_ = httpjson.WriteError(w, status, message)
			return
		}
		if errors.Is(err, order.ErrInvalidOrderID) {
			_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 주문 번호입니다.")
			return
		}
		h.log.Error("check modification", logger.NewField("order_id", orderID), logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	if err := httpjson.Write(w, http.StatusOK, dto.FromModificationCheck(*check)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

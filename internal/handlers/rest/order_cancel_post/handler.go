package order_cancel_post

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dinner-service/internal/entities"
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
		log:     log.With(logger.NewField("handler", "order_cancel_post")),
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
	if err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 주문 번호입니다.")
		return
	}

	quote, err := h.service.CancelOrder(r.Context(), current, orderID, time.Now())
	if err != nil {
		h.writeError(w, orderID, err)
		return
	}

	h.log.Info("order cancelled",
		logger.NewField("order_id", orderID),
		logger.NewField("fee", quote.Fee),
		logger.NewField("refund", quote.Refund),
	)

	response := dto.CancelResponse{
		OrderID:      orderID,
		Status:       entities.OrderCancelled.String(),
		Cancellation: dto.FromCancellationQuote(*quote),
	}
	if err := httpjson.Write(w, http.StatusOK, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, orderID int64, err error) {
	if status, message, remote := httpjson.RemoteStatus(err); remote {
		_ = httpjson.WriteError(w, status, message)
		return
	}

	switch {
	case errors.Is(err, order.ErrCannotCancel):
		_ = httpjson.WriteError(w, http.StatusConflict, order.ErrCannotCancel.Error())
	case errors.Is(err, order.ErrInvalidOrderID):
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 주문 번호입니다.")
	default:
		h.log.Error("cancel order", logger.NewField("order_id", orderID), logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
	}
}

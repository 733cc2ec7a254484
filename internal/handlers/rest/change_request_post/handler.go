package change_request_post

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
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
		log:     log.With(logger.NewField("handler", "change_request_post")),
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

	var request dto.ChangeRequestCreate
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.RequestModification(r.Context(), current, request.ToDomain(orderID), time.Now())
	if err != nil {
		h.writeError(w, orderID, err)
		return
	}

	response := dto.ChangeRequestCreated{
		ChangeRequest: dto.FromChangeRequest(result.ChangeRequest),
		AdvisoryFee:   result.AdvisoryFee,
		Prompt:        result.Prompt,
	}
	if err := httpjson.Write(w, http.StatusCreated, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, orderID int64, err error) {
	if status, message, remote := httpjson.RemoteStatus(err); remote {
		_ = httpjson.WriteError(w, status, message)
		return
	}

	switch {
	case errors.Is(err, order.ErrCannotModify):
		// текст окна изменения идёт после префикса ошибки
		message := strings.TrimPrefix(err.Error(), order.ErrCannotModify.Error()+": ")
		_ = httpjson.WriteError(w, http.StatusConflict, message)
	case errors.Is(err, order.ErrEmptyChange), errors.Is(err, order.ErrInvalidOrderID):
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("request modification", logger.NewField("order_id", orderID), logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
	}
}

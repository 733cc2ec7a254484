package inventory_reservation_post

import (
	"errors"
	"net/http"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/service/inventory"
	"dinner-service/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	location *time.Location
}

func New(log handlerLogger, service Service, location *time.Location) *Handler {
	return &Handler{
		log:      log.With(logger.NewField("handler", "inventory_reservation_post")),
		service:  service,
		location: location,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.ReservationRequest
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := request.ToDomain(h.location)
	if err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Reserve(r.Context(), reservation)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInsufficientStock):
			_ = httpjson.WriteError(w, http.StatusConflict, "선택한 배달 시간대의 재고가 부족합니다.")
		case errors.Is(err, inventory.ErrItemNotFound):
			_ = httpjson.WriteError(w, http.StatusNotFound, "재고 항목을 찾을 수 없습니다.")
		case errors.Is(err, inventory.ErrInvalidQuantity),
			errors.Is(err, inventory.ErrEmptyReservation),
			errors.Is(err, inventory.ErrInvalidOrderID):
			_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("reserve inventory", logger.NewField("order_id", reservation.OrderID), logger.NewField("error", err))
			_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	h.log.Info("inventory reserved",
		logger.NewField("order_id", reservation.OrderID),
		logger.NewField("reservations", len(created)),
	)

	if err := httpjson.Write(w, http.StatusCreated, dto.FromReservations(reservation.OrderID, created)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

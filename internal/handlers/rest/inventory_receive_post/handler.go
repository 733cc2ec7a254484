package inventory_receive_post

import (
	"errors"
	"net/http"
	"strconv"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/service/inventory"
	"dinner-service/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "inventory_receive_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || menuItemID <= 0 {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 메뉴 번호입니다.")
		return
	}

	item, err := h.service.ReceiveOrdered(r.Context(), menuItemID)
	if err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			_ = httpjson.WriteError(w, http.StatusNotFound, "재고 항목을 찾을 수 없습니다.")
			return
		}
		h.log.Error("receive ordered stock", logger.NewField("menu_item_id", menuItemID), logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	h.log.Info("ordered stock received",
		logger.NewField("menu_item_id", menuItemID),
		logger.NewField("capacity_per_window", item.CapacityPerWindow),
	)

	if err := httpjson.Write(w, http.StatusOK, dto.FromInventoryItem("재고 수령이 완료되었습니다.", *item)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

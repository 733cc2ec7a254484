package inventory_restock_post

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
		log:     log.With(logger.NewField("handler", "inventory_restock_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || menuItemID <= 0 {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 메뉴 번호입니다.")
		return
	}

	var request dto.InventoryRestockRequest
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.Restock(r.Context(), menuItemID, *request.CapacityPerWindow, request.Notes, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			_ = httpjson.WriteError(w, http.StatusNotFound, "재고 항목을 찾을 수 없습니다.")
		case errors.Is(err, inventory.ErrInvalidQuantity):
			_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("restock", logger.NewField("menu_item_id", menuItemID), logger.NewField("error", err))
			_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	h.log.Info("inventory restocked",
		logger.NewField("menu_item_id", menuItemID),
		logger.NewField("capacity_per_window", item.CapacityPerWindow),
	)

	if err := httpjson.Write(w, http.StatusOK, dto.FromInventoryItem("재고가 보충되었습니다.", *item)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

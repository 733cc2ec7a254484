package inventory_order_post

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
		log:     log.With(logger.NewField("handler", "inventory_order_post")),
		service: service,
	}
}

// ServeHTTP фиксирует количество, заказанное у поставщика, ёмкость окна не меняется до приёмки
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || menuItemID <= 0 {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "잘못된 메뉴 번호입니다.")
		return
	}

	var request dto.InventoryOrderRequest
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.SetOrderedQuantity(r.Context(), menuItemID, *request.OrderedQuantity)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			_ = httpjson.WriteError(w, http.StatusNotFound, "재고 항목을 찾을 수 없습니다.")
		case errors.Is(err, inventory.ErrInvalidQuantity):
			_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("set ordered quantity", logger.NewField("menu_item_id", menuItemID), logger.NewField("error", err))
			_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	h.log.Info("ordered quantity updated",
		logger.NewField("menu_item_id", menuItemID),
		logger.NewField("ordered_quantity", item.OrderedQuantity),
	)

	if err := httpjson.Write(w, http.StatusOK, dto.FromInventoryItem("발주 수량이 저장되었습니다.", *item)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

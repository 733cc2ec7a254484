package inventory_availability_get

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	location *time.Location
}

func New(log handlerLogger, service Service, location *time.Location) *Handler {
	return &Handler{
		log:      log.With(logger.NewField("handler", "inventory_availability_get")),
		service:  service,
		location: location,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ids, err := parseIDs(query.Get("menuItemIds"))
	if err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "menuItemIds 형식이 올바르지 않습니다.")
		return
	}

	deliveryTime, err := dto.ParseDeliveryTime(query.Get("deliveryTime"), h.location)
	if err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, "deliveryTime 형식이 올바르지 않습니다.")
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), ids, deliveryTime)
	if err != nil {
		h.log.Error("check availability", logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	// ключи JSON объекта строковые
	response := make(map[string]bool, len(availability))
	for id, available := range availability {
		response[strconv.FormatInt(id, 10)] = available
	}

	if err := httpjson.Write(w, http.StatusOK, response); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func parseIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

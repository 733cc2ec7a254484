package inventory_get

import (
	"net/http"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "inventory_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("weekStart")

	weekStart, err := h.service.ResolveWeekStart(raw, time.Now())
	if err != nil {
		// кривую дату не отвергаем, показываем текущую неделю
		h.log.Warn("invalid weekStart, using current week",
			logger.NewField("week_start", raw),
			logger.NewField("error", err),
		)
	}

	snapshots, err := h.service.WeekSnapshot(r.Context(), weekStart)
	if err != nil {
		h.log.Error("get inventory snapshot", logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	if err := httpjson.Write(w, http.StatusOK, dto.FromSnapshots(snapshots)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"dinner-service/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	db             Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		log:            log.With(logger.NewField("handler", "healthcheck_head")),
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

// ServeHTTP во время дренажа и без базы отдаём 503, балансировщик снимает инстанс
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

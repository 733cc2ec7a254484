package ping_get

import (
	"net/http"

	"dinner-service/internal/pkg/httpjson"
	"dinner-service/pkg/logger"
)

type pingResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
}

type Handler struct {
	log     handlerLogger
	service string
}

func New(log handlerLogger, service string) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "ping_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := pingResponse{
		Message: "pong",
		Service: h.service,
	}

	if err := httpjson.Write(w, http.StatusOK, res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

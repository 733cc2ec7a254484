package voice_summary_get

import (
	"errors"
	"net/http"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/internal/service/voice"
	"dinner-service/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "voice_summary_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := session.FromContext(r.Context())
	if !ok {
		_ = httpjson.WriteError(w, http.StatusUnauthorized, "")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	summary, err := h.service.Summary(r.Context(), current, sessionID)
	if err != nil {
		switch status, message, remote := httpjson.RemoteStatus(err); {
		case remote:
			_ = httpjson.WriteError(w, status, message)
		case errors.Is(err, voice.ErrSessionNotFound):
			_ = httpjson.WriteError(w, http.StatusNotFound, "음성 주문 세션을 찾을 수 없습니다.")
		default:
			h.log.Error("get voice summary", logger.NewField("session_id", sessionID), logger.NewField("error", err))
			_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, dto.FromVoiceSummary(*summary)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

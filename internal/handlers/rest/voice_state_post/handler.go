package voice_state_post

import (
	"errors"
	"net/http"
	"time"

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
		log:     log.With(logger.NewField("handler", "voice_state_post")),
		service: service,
	}
}

// ServeHTTP принимает частичное состояние, извлечённое ассистентом из реплики
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := session.FromContext(r.Context())
	if !ok {
		_ = httpjson.WriteError(w, http.StatusUnauthorized, "")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var request dto.VoiceStateRequest
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.UpdateState(r.Context(), current, sessionID, request.ToDomain(), time.Now())
	if err != nil {
		switch status, message, remote := httpjson.RemoteStatus(err); {
		case remote:
			_ = httpjson.WriteError(w, status, message)
		case errors.Is(err, voice.ErrSessionNotFound):
			_ = httpjson.WriteError(w, http.StatusNotFound, "음성 주문 세션을 찾을 수 없습니다.")
		case errors.Is(err, voice.ErrAlreadyPlaced):
			_ = httpjson.WriteError(w, http.StatusConflict, voice.ErrAlreadyPlaced.Error())
		default:
			h.log.Error("update voice state", logger.NewField("session_id", sessionID), logger.NewField("error", err))
			_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	if err := httpjson.Write(w, http.StatusOK, dto.FromVoiceSummary(*summary)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

package voice_start_post

import (
	"net/http"
	"time"

	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "voice_start_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := session.FromContext(r.Context())
	if !ok {
		_ = httpjson.WriteError(w, http.StatusUnauthorized, "")
		return
	}

	voiceSession, summary, err := h.service.Start(r.Context(), current, time.Now())
	if err != nil {
		if status, message, remote := httpjson.RemoteStatus(err); remote {
			_ = httpjson.WriteError(w, status, message)
			return
		}
		h.log.Error("start voice session", logger.NewField("error", err))
		_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	h.log.Info("voice session started",
		logger.NewField("session_id", voiceSession.ID),
		logger.NewField("user_id", voiceSession.UserID),
	)

	if err := httpjson.Write(w, http.StatusCreated, dto.FromVoiceStart(*voiceSession, *summary)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

package voice_confirm_post

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/handlers/rest/dto"
	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/internal/service/voice"
	"dinner-service/pkg/logger"

	"github.com/gorilla/mux"
)

// ошибки, которые клиент может исправить, дополнив разговор
var unprocessable = []error{
	voice.ErrNotReady,
	voice.ErrCardRequired,
	voice.ErrUnknownDinner,
	voice.ErrUnknownMenuItem,
	voice.ErrStyleNotAvailable,
	voice.ErrInvalidDeliverySlot,
	entities.ErrUnknownServingStyle,
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "voice_confirm_post")),
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

	var request dto.VoiceConfirmRequest
	if err := dto.Decode(r, &request); err != nil {
		_ = httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	confirmation, err := h.service.Confirm(r.Context(), current, sessionID, request.Password, time.Now())
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	h.log.Info("voice order placed",
		logger.NewField("session_id", sessionID),
		logger.NewField("order_id", confirmation.Order.OrderID),
		logger.NewField("total_price", confirmation.Order.TotalPrice),
	)

	if err := httpjson.Write(w, http.StatusOK, dto.FromVoiceConfirmation(*confirmation)); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, sessionID string, err error) {
	if status, message, remote := httpjson.RemoteStatus(err); remote {
		_ = httpjson.WriteError(w, status, message)
		return
	}

	switch {
	case errors.Is(err, voice.ErrSessionNotFound):
		_ = httpjson.WriteError(w, http.StatusNotFound, "음성 주문 세션을 찾을 수 없습니다.")
		return
	case errors.Is(err, voice.ErrAlreadyPlaced):
		_ = httpjson.WriteError(w, http.StatusConflict, voice.ErrAlreadyPlaced.Error())
		return
	}

	for _, target := range unprocessable {
		if errors.Is(err, target) {
			_ = httpjson.WriteError(w, http.StatusUnprocessableEntity, clientMessage(err, target))
			return
		}
	}

	h.log.Error("confirm voice order", logger.NewField("session_id", sessionID), logger.NewField("error", err))
	_ = httpjson.WriteError(w, http.StatusInternalServerError, "")
}

// clientMessage отрезает технический префикс обёрток, оставляя текст ошибки и её детали
func clientMessage(err, target error) string {
	text := err.Error()
	if idx := strings.Index(text, target.Error()); idx >= 0 {
		return text[idx:]
	}
	return target.Error()
}

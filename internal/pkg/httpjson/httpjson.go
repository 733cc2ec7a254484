package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"dinner-service/internal/entities"
)

type errorResponse struct {
	Error string `json:"error"`
}

func Write(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return Write(w, status, errorResponse{Error: message})
}

// RemoteStatus переводит ошибку dinner API в ответ клиенту, ok=false если ошибка не удалённая
func RemoteStatus(err error) (int, string, bool) {
	message := entities.RemoteMessage(err)

	switch {
	case errors.Is(err, entities.ErrRemoteUnauthorized):
		return http.StatusUnauthorized, withDefault(message, "인증이 필요합니다."), true
	case errors.Is(err, entities.ErrRemoteForbidden):
		return http.StatusForbidden, withDefault(message, "권한이 없습니다."), true
	case errors.Is(err, entities.ErrRemoteNotFound):
		return http.StatusNotFound, withDefault(message, "주문을 찾을 수 없습니다."), true
	case errors.Is(err, entities.ErrRemoteRejected):
		return http.StatusConflict, withDefault(message, "요청이 거절되었습니다."), true
	case errors.Is(err, entities.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, "주문 서버에 일시적으로 연결할 수 없습니다.", true
	case errors.Is(err, entities.ErrRemoteUnexpected):
		return http.StatusBadGateway, "주문 서버 응답을 처리할 수 없습니다.", true
	}
	return 0, "", false
}

func withDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

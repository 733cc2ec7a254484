package entities

import (
	"errors"
	"fmt"
)

// Ошибки удалённого dinner API, общие для всех слоёв
var (
	ErrRemoteUnauthorized = errors.New("remote: unauthorized")
	ErrRemoteForbidden    = errors.New("remote: forbidden")
	ErrRemoteNotFound     = errors.New("remote: not found")
	ErrRemoteRejected     = errors.New("remote: request rejected")
	ErrRemoteUnavailable  = errors.New("remote: temporarily unavailable")
	ErrRemoteUnexpected   = errors.New("remote: unexpected response")
)

// RemoteError несёт код ответа и текст поля "error" из тела
type RemoteError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// RemoteMessage текст ошибки от удалённой стороны, если он был
func RemoteMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return ""
}

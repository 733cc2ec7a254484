package session

import (
	"context"
	"net/http"
	"strings"

	"dinner-service/internal/entities"
)

type ctxKey struct{}

const bearerPrefix = "bearer "

func WithSession(ctx context.Context, session entities.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

func FromContext(ctx context.Context) (entities.Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(entities.Session)
	return session, ok
}

// FromRequest достаёт токен из "Authorization: Bearer <token>"
func FromRequest(r *http.Request) (entities.Session, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return entities.Session{}, false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return entities.Session{}, false
	}
	return entities.Session{Token: token}, true
}

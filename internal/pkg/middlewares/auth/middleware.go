package auth

import (
	"net/http"

	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
)

// Middleware кладёт Bearer токен в контекст, сам токен проверяет dinner API
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := session.FromRequest(r)
			if !ok {
				_ = httpjson.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), current)))
		})
	}
}

package admin_only

import (
	"net/http"

	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/session"
	"dinner-service/pkg/logger"
)

// Middleware роль берётся из /auth/me на каждый запрос, ставится после auth
func Middleware(log handlerLogger, profiles ProfileGateway) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := session.FromContext(r.Context())
			if !ok {
				_ = httpjson.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
				return
			}

			profile, err := profiles.GetProfile(r.Context(), current)
			if err != nil {
				status, message, remote := httpjson.RemoteStatus(err)
				if !remote {
					status, message = http.StatusInternalServerError, ""
				}
				log.Warn("admin check failed",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				_ = httpjson.WriteError(w, status, message)
				return
			}

			if !profile.IsAdmin() {
				log.Info("non-admin request rejected",
					logger.NewField("path", r.URL.Path),
					logger.NewField("user_id", profile.ID),
				)
				_ = httpjson.WriteError(w, http.StatusForbidden, "관리자만 접근할 수 있습니다.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package rate_limiter

import (
	"net/http"
	"strconv"

	"dinner-service/internal/pkg/httpjson"
	"dinner-service/internal/pkg/middlewares/route"
	"dinner-service/pkg/logger"
)

const retryAfterSeconds = "1"

// Middleware один bucket на весь сервер, qps уходит клиенту в X-RateLimit-Limit
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			template := route.Template(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, template).Inc()

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", template),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", retryAfterSeconds)
			if err := httpjson.WriteError(w, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."); err != nil {
				log.Error("failed to write rate limit response", logger.NewField("error", err))
			}
		})
	}
}

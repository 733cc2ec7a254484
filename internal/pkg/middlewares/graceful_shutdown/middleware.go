package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"dinner-service/internal/pkg/httpjson"
)

// Middleware после начала остановки новые запросы получают 503 и Connection: close,
// запросы, начатые раньше, дорабатывают до конца
func Middleware(draining *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if draining.Load() {
				w.Header().Set("Connection", "close")
				_ = httpjson.WriteError(w, http.StatusServiceUnavailable, "서버가 종료 중입니다.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

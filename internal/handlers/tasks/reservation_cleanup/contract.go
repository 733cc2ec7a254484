//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reservation_cleanup_test
package reservation_cleanup

import (
	"context"
	"time"

	"dinner-service/pkg/logger"
)

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ReleaseExpired(ctx context.Context, now time.Time) (int64, error)
}

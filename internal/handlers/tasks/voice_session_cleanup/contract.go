//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_session_cleanup_test
package voice_session_cleanup

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
	EvictIdle(ctx context.Context, now time.Time) (int, error)
}

type SessionCounter interface {
	Len() int
}

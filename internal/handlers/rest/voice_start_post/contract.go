//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_start_post_test
package voice_start_post

import (
	"context"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Start(ctx context.Context, session entities.Session, now time.Time) (*entities.VoiceSession, *entities.VoiceSummary, error)
}

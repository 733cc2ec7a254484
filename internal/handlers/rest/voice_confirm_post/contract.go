//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_confirm_post_test
package voice_confirm_post

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
	Confirm(ctx context.Context, session entities.Session, id string, password string, now time.Time) (*entities.VoiceConfirmation, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_state_post_test
package voice_state_post

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
	UpdateState(ctx context.Context, session entities.Session, id string, patch entities.VoiceOrderState, now time.Time) (*entities.VoiceSummary, error)
}

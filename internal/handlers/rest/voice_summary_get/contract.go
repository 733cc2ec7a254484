//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_summary_get_test
package voice_summary_get

import (
	"context"

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
	Summary(ctx context.Context, session entities.Session, id string) (*entities.VoiceSummary, error)
}

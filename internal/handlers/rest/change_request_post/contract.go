//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=change_request_post_test
package change_request_post

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
	RequestModification(ctx context.Context, session entities.Session, modify entities.ChangeRequestModify, now time.Time) (*entities.ChangeRequestResult, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=change_requests_get_test
package change_requests_get

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
	ListChangeRequests(ctx context.Context, session entities.Session, orderID int64) ([]entities.ChangeRequest, error)
}

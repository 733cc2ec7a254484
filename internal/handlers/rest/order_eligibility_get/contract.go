//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_eligibility_get_test
package order_eligibility_get

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
	GetEligibility(ctx context.Context, session entities.Session, orderID int64, now time.Time) (*entities.OrderView, error)
}

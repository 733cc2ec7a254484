//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_availability_get_test
package inventory_availability_get

import (
	"context"
	"time"

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
	CheckAvailability(ctx context.Context, menuItemIDs []int64, deliveryTime time.Time) (map[int64]bool, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_get_test
package inventory_get

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
	ResolveWeekStart(raw string, now time.Time) (time.Time, error)
	WeekSnapshot(ctx context.Context, weekStart time.Time) ([]entities.InventorySnapshot, error)
}

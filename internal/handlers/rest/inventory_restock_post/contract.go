//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_restock_post_test
package inventory_restock_post

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
	Restock(ctx context.Context, menuItemID int64, capacity int, notes *string, now time.Time) (*entities.InventoryItem, error)
}
